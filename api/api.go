// Package api embeds the OpenAPI document of the mysessions HTTP API.
package api

import _ "embed"

// OpenAPI is the OpenAPI 3 document served and enforced by the HTTP API.
//
//go:embed my-sessions.openapi.yaml
var OpenAPI []byte
