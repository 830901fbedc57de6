package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// StatusError is the status marker of every failed API response.
const StatusError = "error"

const internalErrorMessage = "an internal server error has occurred"

// ErrResponse from server.
type ErrResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Error   *MyError `json:"error,omitempty"`
}

// RegisterErrorHandler register custom error handler.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	return map[string]int{
		ErrBadParameter:        http.StatusBadRequest,
		ErrEntityNotFound:      http.StatusNotFound,
		ErrInstanceExists:      http.StatusConflict,
		ErrAuthFailure:         http.StatusConflict,
		ErrDeliveryFailed:      http.StatusBadGateway,
		ErrStoreUnavailable:    http.StatusServiceUnavailable,
		ErrQueueUnavailable:    http.StatusServiceUnavailable,
		ErrPairingTimeout:      http.StatusGatewayTimeout,
		ErrInternalServerError: http.StatusInternalServerError,
	}
}

// HTTPErrorHandler is an error handler.
type HTTPErrorHandler struct {
	statusByCode map[string]int
	logger       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		statusByCode: errorCodeToStatusCodeMaps,
		logger:       logger,
	}
}

// Handler handles error returned by echo Handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	myErr, status := h.classify(err)
	h.log(c, status, myErr, err)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrResponse{Status: StatusError, Message: myErr.Message, Error: myErr})
}

// classify turns err into the MyError sent to the client and its status. Errors raised by
// echo itself (routing, binding, the OpenAPI validator) keep echo's status.
func (h *HTTPErrorHandler) classify(err error) (*MyError, int) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if inner, ok := he.Internal.(*echo.HTTPError); ok {
			he = inner
		}
		msg, _ := he.Message.(string)
		return NewMyError(codeForEchoError(he), msg, err), he.Code
	}

	myErr := ToMyError(err)
	if myErr == nil {
		myErr = NewMyError(ErrInternalServerError, internalErrorMessage, err)
	}
	status, ok := h.statusByCode[myErr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	return myErr, status
}

func codeForEchoError(he *echo.HTTPError) string {
	var requestError *openapi3filter.RequestError
	switch {
	case errors.As(he.Internal, &requestError):
		return ErrBadParameter
	case he.Code == http.StatusNotFound:
		return ErrEntityNotFound
	case he.Code >= 400 && he.Code < 500:
		return ErrBadParameter
	default:
		return ErrInternalServerError
	}
}

func (h *HTTPErrorHandler) log(c echo.Context, status int, myErr *MyError, err error) {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if status >= http.StatusInternalServerError {
		level.Error(h.logger).Log(
			"msg", "HTTP request error",
			"path", c.Path(),
			"request_id", requestID,
			"err", err,
		)
		return
	}
	level.Info(h.logger).Log(
		"msg", "HTTP request rejected",
		"path", c.Path(),
		"request_id", requestID,
		"error_code", myErr.Code,
		"err", err,
	)
}
