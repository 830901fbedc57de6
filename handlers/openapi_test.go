package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mysessions/api"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAPIValidator_InvalidDocument(t *testing.T) {
	_, err := NewOpenAPIValidator([]byte("not: [valid"))
	assert.Error(t, err)

	_, err = NewOpenAPIValidator([]byte(`{"openapi":"3.0.3","info":{"title":"x"},"paths":{}}`))
	assert.Error(t, err)
}

func TestNewOpenAPIValidator(t *testing.T) {
	validator, err := NewOpenAPIValidator(api.OpenAPI)
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantCalled bool
		wantStatus int
	}{
		{name: "valid", method: http.MethodPost, target: "/send-message", body: `{"instanceId":"a","number":"1","message":"m"}`, wantCalled: true},
		{name: "missing field", method: http.MethodPost, target: "/send-message", body: `{"instanceId":"a"}`, wantStatus: http.StatusBadRequest},
		{name: "bad path param", method: http.MethodGet, target: "/get-details/a%20b", wantStatus: http.StatusBadRequest},
		{name: "bad enum", method: http.MethodPost, target: "/v1/instances/a/events", body: `{"type":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "binary body skipped", method: http.MethodPut, target: "/v1/sessions/a", body: "\x00\x01", wantCalled: true},
		{name: "unknown path passes through", method: http.MethodGet, target: "/metrics", wantCalled: true},
		{name: "unknown method passes through", method: http.MethodPatch, target: "/instances", wantCalled: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := validator(func(c echo.Context) error {
				called = true
				return nil
			})

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if strings.HasPrefix(tt.target, "/v1/sessions") {
				req.Header.Set(echo.HeaderContentType, echo.MIMEOctetStream)
			} else if tt.body != "" {
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			}
			ectx := echo.New().NewContext(req, httptest.NewRecorder())

			err := h(ectx)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantCalled {
				assert.NoError(t, err)
				return
			}
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.wantStatus, he.Code)
		})
	}
}
