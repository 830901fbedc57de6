package interfaces

// ArtifactRenderer turns a raw pairing challenge into something a human can scan.
//
//go:generate moq -stub -out mock/artifact_renderer.go -pkg mock . ArtifactRenderer
type ArtifactRenderer interface {
	Render(challenge string) (string, error)
}
