package scenario

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mysessions/handlers"
	"mysessions/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, register func(e *echo.Echo)) *Client {
	e := echo.New()
	service.RegisterErrorHandler(e, log.NewNopLogger())
	register(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return NewClient(&Config{ServiceAddr: srv.URL + "/", EngineAddr: srv.URL})
}

func TestClientDecodesResponses(t *testing.T) {
	client := newTestClient(t, func(e *echo.Echo) {
		e.POST("/send-message", func(c echo.Context) error {
			var req handlers.SendMessageRequest
			if err := c.Bind(&req); err != nil {
				return err
			}
			return c.JSON(http.StatusOK, handlers.SendMessageResponse{
				Status: handlers.StatusSuccess,
				SmsRes: handlers.DeliveryInfo{MessageId: "m1", ChatId: req.Number + "@c.us"},
			})
		})
	})

	resp, err := client.SendMessage(context.Background(), "abcd1234", "155", "hi")
	require.NoError(t, err)
	assert.Equal(t, "155@c.us", resp.SmsRes.ChatId)
	assert.Equal(t, "m1", resp.SmsRes.MessageId)
}

func TestClientErrors(t *testing.T) {
	client := newTestClient(t, func(e *echo.Echo) {
		e.GET("/get-details/:instanceId", func(c echo.Context) error {
			return service.NewInstanceNotFoundError(c.Param("instanceId"))
		})
		e.HEAD("/v1/sessions/:instanceId", func(c echo.Context) error {
			return service.NewEntityNotFoundError("missing", nil)
		})
	})

	_, err := client.GetDetails(context.Background(), "abcd1234")
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.NoError(t, expectStatus("get details", err, http.StatusNotFound, service.ErrEntityNotFound))
	assert.Error(t, expectStatus("get details", err, http.StatusBadRequest, ""))
	assert.Error(t, expectStatus("get details", nil, http.StatusNotFound, ""))

	exists, err := client.SessionExists(context.Background(), "abcd1234")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRegistry(t *testing.T) {
	names := Names()
	assert.IsIncreasing(t, names)
	for _, want := range []string{scenarioHealth, scenarioPairingWorkflow, scenarioQueueDrain, scenarioRestartRehydrates} {
		assert.Contains(t, names, want)
	}

	err := Run(context.Background(), "no_such_scenario", &Config{})
	var unknown *UnknownScenarioError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "no_such_scenario", unknown.Name)

	assert.Panics(t, func() { Register(scenarioHealth, runHealth) })
}

func TestScenariosRequiringEnvironment(t *testing.T) {
	assert.Error(t, Run(context.Background(), scenarioQueueDrain, &Config{}))
	assert.Error(t, Run(context.Background(), scenarioRestartRehydrates, &Config{}))
}
