package mys3

import (
	"path"
	"strings"
)

// Key layout of stored sessions:
//
//	[<root>/]whatsapp-sessions/<instanceId>/RemoteAuth-<instanceId>.zip
const (
	sessionsDir = "whatsapp-sessions"
	filePrefix  = "RemoteAuth-"
	fileSuffix  = ".zip"
)

// ListPrefix returns the key prefix under which every session of root is stored.
func ListPrefix(root string) string {
	return path.Join(strings.Trim(root, "/"), sessionsDir) + "/"
}

// StorageKey returns the object key of the session blob for id.
func StorageKey(root string, id string) string {
	return ListPrefix(root) + id + "/" + filePrefix + id + fileSuffix
}

// ExtractInstanceID derives the instance id from an object key. Keys that do not match the
// layout exactly (other files, nested directories, mismatching ids) are rejected.
func ExtractInstanceID(root string, key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, ListPrefix(root))
	if !ok {
		return "", false
	}
	dir, file, ok := strings.Cut(rest, "/")
	if !ok || dir == "" || strings.Contains(file, "/") {
		return "", false
	}
	name, ok := strings.CutPrefix(file, filePrefix)
	if !ok {
		return "", false
	}
	id, ok := strings.CutSuffix(name, fileSuffix)
	if !ok || id != dir {
		return "", false
	}
	return id, true
}
