package scenario

import "mysessions/integrationtests/docker"

// Config holds settings for running a scenario.
type Config struct {
	// ServiceAddr is the base URL of the orchestrator HTTP API.
	ServiceAddr string
	// EngineAddr is the base URL of the fake engine (sidecar and control routes).
	EngineAddr string
	// QueueURL is the work queue the orchestrator drains. Queue scenarios fail when empty.
	QueueURL string
	// AWSRegion and AWSEndpoint address the emulated AWS services.
	AWSRegion   string
	AWSEndpoint string
	// Compose is nil when the environment is managed outside the runner; scenarios that
	// stop and start services fail in that case.
	Compose *docker.Compose
}
