package handlers

import (
	"github.com/labstack/echo/v4"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /)
	GetRoot(ctx echo.Context) error
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// (POST /create-instance)
	CreateInstance(ctx echo.Context) error
	// (POST /send-message)
	SendMessage(ctx echo.Context) error
	// (GET /get-details/{instanceId})
	GetDetails(ctx echo.Context, instanceId string) error
	// (GET /instances)
	ListInstances(ctx echo.Context) error
	// (POST /restart-instance/{instanceId})
	RestartInstance(ctx echo.Context, instanceId string) error
	// (DELETE /terminate-instance/{instanceId})
	TerminateInstance(ctx echo.Context, instanceId string) error
	// (GET /v1/status)
	GetMirroredStatuses(ctx echo.Context) error
	// (POST /v1/instances/{instanceId}/events)
	PostEngineEvent(ctx echo.Context, instanceId string) error
	// (POST /v1/instances/{instanceId}/drain)
	TriggerDrain(ctx echo.Context, instanceId string) error
	// (PUT /v1/sessions/{instanceId})
	SaveSession(ctx echo.Context, instanceId string) error
	// (GET /v1/sessions/{instanceId})
	LoadSession(ctx echo.Context, instanceId string) error
	// (HEAD /v1/sessions/{instanceId})
	SessionExists(ctx echo.Context, instanceId string) error
	// (DELETE /v1/sessions/{instanceId})
	DeleteSession(ctx echo.Context, instanceId string) error
}

// EchoRouter is implemented by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	withID := func(h func(echo.Context, string) error) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			return h(ctx, ctx.Param("instanceId"))
		}
	}

	router.GET("/", si.GetRoot)
	router.GET("/health", si.GetHealth)
	router.POST("/create-instance", si.CreateInstance)
	router.POST("/send-message", si.SendMessage)
	router.GET("/get-details/:instanceId", withID(si.GetDetails))
	router.GET("/instances", si.ListInstances)
	router.POST("/restart-instance/:instanceId", withID(si.RestartInstance))
	router.DELETE("/terminate-instance/:instanceId", withID(si.TerminateInstance))

	router.GET("/v1/status", si.GetMirroredStatuses)
	router.POST("/v1/instances/:instanceId/events", withID(si.PostEngineEvent))
	router.POST("/v1/instances/:instanceId/drain", withID(si.TriggerDrain))
	router.PUT("/v1/sessions/:instanceId", withID(si.SaveSession))
	router.GET("/v1/sessions/:instanceId", withID(si.LoadSession))
	router.HEAD("/v1/sessions/:instanceId", withID(si.SessionExists))
	router.DELETE("/v1/sessions/:instanceId", withID(si.DeleteSession))
}
