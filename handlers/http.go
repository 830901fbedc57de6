// Package handlers contains http handlers for mysessions.
package handlers

import (
	"fmt"
	"io"
	"net/http"

	"mysessions/helpers"
	"mysessions/interfaces"
	"mysessions/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// maxSessionBlob caps the size of an uploaded credential archive.
const maxSessionBlob = 64 << 20

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	manager interfaces.InstanceManager
	logger  log.Logger
}

// NewHTTPServer creates a new HTTPServer. Panics on nil manager or logger.
func NewHTTPServer(manager interfaces.InstanceManager, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer")
	return &HTTPServer{
		manager: helpers.NilPanic(manager, "handlers.http.go: manager is required"),
		logger:  logger,
	}
}

// GetRoot (GET /) is the liveness probe of the HTTP surface.
func (h *HTTPServer) GetRoot(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, StatusResponse{Status: StatusServerUp})
}

// GetHealth (GET /health) reports the orchestrator health.
func (h *HTTPServer) GetHealth(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, StatusResponse{Status: h.manager.Health()})
}

// CreateInstance (POST /create-instance) starts a new instance and returns its first pairing QR code.
// The QR code is omitted when the instance authenticated from a stored session.
func (h *HTTPServer) CreateInstance(ectx echo.Context) error {
	info, err := h.manager.CreateInstance(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("createInstance failed, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toCreateInstanceResponse(info))
}

// SendMessage (POST /send-message) delivers one message through a ready instance.
func (h *HTTPServer) SendMessage(ectx echo.Context) error {
	var req SendMessageRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	in, err := fromSendMessageRequest(req)
	if err != nil {
		return err
	}

	res, err := h.manager.SendMessage(ectx.Request().Context(), in.InstanceID, in.Target, in.Body)
	if err != nil {
		return fmt.Errorf("sendMessage failed for instance %s, err: %w", in.InstanceID, err)
	}

	return ectx.JSON(http.StatusOK, toSendMessageResponse(in, res))
}

// GetDetails (GET /get-details/{instanceId}).
func (h *HTTPServer) GetDetails(ectx echo.Context, instanceId string) error {
	info, err := h.manager.GetDetails(instanceId)
	if err != nil {
		return err
	}

	return ectx.JSON(http.StatusOK, toDetailsResponse(info))
}

// ListInstances (GET /instances) lists the instances registered in this process.
func (h *HTTPServer) ListInstances(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toInstancesResponse(h.manager.ListInstances()))
}

// RestartInstance (POST /restart-instance/{instanceId}).
func (h *HTTPServer) RestartInstance(ectx echo.Context, instanceId string) error {
	if err := h.manager.RestartInstance(instanceId); err != nil {
		return err
	}

	return ectx.JSON(http.StatusOK, toMessageResponse("Instance %s restarted successfully.", instanceId))
}

// TerminateInstance (DELETE /terminate-instance/{instanceId}).
func (h *HTTPServer) TerminateInstance(ectx echo.Context, instanceId string) error {
	if err := h.manager.TerminateInstance(instanceId); err != nil {
		return err
	}

	return ectx.JSON(http.StatusOK, toMessageResponse("Instance %s terminated successfully.", instanceId))
}

// GetMirroredStatuses (GET /v1/status) lists the statuses published by every orchestrator process.
func (h *HTTPServer) GetMirroredStatuses(ectx echo.Context) error {
	infos, err := h.manager.MirroredStatuses(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("getMirroredStatuses failed, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toStatusesResponse(infos))
}

// PostEngineEvent (POST /v1/instances/{instanceId}/events) accepts a lifecycle event from the engine sidecar.
func (h *HTTPServer) PostEngineEvent(ectx echo.Context, instanceId string) error {
	var req EngineEvent
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	ev, err := fromEngineEvent(req)
	if err != nil {
		return err
	}

	if err := h.manager.HandleEngineEvent(instanceId, ev); err != nil {
		return err
	}

	return ectx.NoContent(http.StatusAccepted)
}

// TriggerDrain (POST /v1/instances/{instanceId}/drain).
func (h *HTTPServer) TriggerDrain(ectx echo.Context, instanceId string) error {
	if err := h.manager.TriggerDrain(instanceId); err != nil {
		return err
	}

	return ectx.NoContent(http.StatusAccepted)
}

// SaveSession (PUT /v1/sessions/{instanceId}) stores the credential archive uploaded by the engine.
func (h *HTTPServer) SaveSession(ectx echo.Context, instanceId string) error {
	blob, err := io.ReadAll(io.LimitReader(ectx.Request().Body, maxSessionBlob+1))
	if err != nil {
		return service.NewBadParameterError("failed to read session archive", err)
	}
	if len(blob) == 0 {
		return service.NewBadParameterError("session archive is empty", nil)
	}
	if len(blob) > maxSessionBlob {
		return service.NewBadParameterError("session archive is too large", nil)
	}

	if err := h.manager.SaveSession(ectx.Request().Context(), instanceId, blob); err != nil {
		return fmt.Errorf("saveSession failed for instance %s, err: %w", instanceId, err)
	}
	level.Debug(h.logger).Log("msg", "Session archive stored", "instance_id", instanceId, "bytes", len(blob))

	return ectx.NoContent(http.StatusNoContent)
}

// LoadSession (GET /v1/sessions/{instanceId}) returns the stored credential archive.
func (h *HTTPServer) LoadSession(ectx echo.Context, instanceId string) error {
	blob, err := h.manager.LoadSession(ectx.Request().Context(), instanceId)
	if err != nil {
		return fmt.Errorf("loadSession failed for instance %s, err: %w", instanceId, err)
	}

	return ectx.Blob(http.StatusOK, echo.MIMEOctetStream, blob)
}

// SessionExists (HEAD /v1/sessions/{instanceId}).
func (h *HTTPServer) SessionExists(ectx echo.Context, instanceId string) error {
	ok, err := h.manager.SessionExists(ectx.Request().Context(), instanceId)
	if err != nil {
		return fmt.Errorf("sessionExists failed for instance %s, err: %w", instanceId, err)
	}
	if !ok {
		return ectx.NoContent(http.StatusNotFound)
	}

	return ectx.NoContent(http.StatusOK)
}

// DeleteSession (DELETE /v1/sessions/{instanceId}).
func (h *HTTPServer) DeleteSession(ectx echo.Context, instanceId string) error {
	if err := h.manager.DeleteSession(ectx.Request().Context(), instanceId); err != nil {
		return fmt.Errorf("deleteSession failed for instance %s, err: %w", instanceId, err)
	}

	return ectx.NoContent(http.StatusNoContent)
}
