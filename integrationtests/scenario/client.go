package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mysessions/handlers"
	"mysessions/integrationtests/fakeengine"
	"mysessions/service"

	"github.com/labstack/echo/v4"
)

const requestTimeout = 90 * time.Second

// Client calls the orchestrator API and the fake engine control routes.
type Client struct {
	service string
	engine  string
	http    *http.Client
}

// NewClient creates a client for the configured addresses.
func NewClient(cfg *Config) *Client {
	return &Client{
		service: strings.TrimSuffix(cfg.ServiceAddr, "/"),
		engine:  strings.TrimSuffix(cfg.EngineAddr, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Root calls GET /.
func (c *Client) Root(ctx context.Context) (handlers.StatusResponse, error) {
	var out handlers.StatusResponse
	err := c.do(ctx, http.MethodGet, c.service+"/", nil, &out)
	return out, err
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (handlers.StatusResponse, error) {
	var out handlers.StatusResponse
	err := c.do(ctx, http.MethodGet, c.service+"/health", nil, &out)
	return out, err
}

// CreateInstance calls POST /create-instance.
func (c *Client) CreateInstance(ctx context.Context) (handlers.CreateInstanceResponse, error) {
	var out handlers.CreateInstanceResponse
	err := c.do(ctx, http.MethodPost, c.service+"/create-instance", nil, &out)
	return out, err
}

// SendMessage calls POST /send-message.
func (c *Client) SendMessage(ctx context.Context, instanceID, number, message string) (handlers.SendMessageResponse, error) {
	var out handlers.SendMessageResponse
	err := c.do(ctx, http.MethodPost, c.service+"/send-message", handlers.SendMessageRequest{
		InstanceId: instanceID,
		Number:     number,
		Message:    message,
	}, &out)
	return out, err
}

// GetDetails calls GET /get-details/{id}.
func (c *Client) GetDetails(ctx context.Context, instanceID string) (handlers.DetailsResponse, error) {
	var out handlers.DetailsResponse
	err := c.do(ctx, http.MethodGet, c.service+"/get-details/"+url.PathEscape(instanceID), nil, &out)
	return out, err
}

// ListInstances calls GET /instances.
func (c *Client) ListInstances(ctx context.Context) (handlers.InstancesResponse, error) {
	var out handlers.InstancesResponse
	err := c.do(ctx, http.MethodGet, c.service+"/instances", nil, &out)
	return out, err
}

// RestartInstance calls POST /restart-instance/{id}.
func (c *Client) RestartInstance(ctx context.Context, instanceID string) error {
	return c.do(ctx, http.MethodPost, c.service+"/restart-instance/"+url.PathEscape(instanceID), nil, nil)
}

// TerminateInstance calls DELETE /terminate-instance/{id}.
func (c *Client) TerminateInstance(ctx context.Context, instanceID string) error {
	return c.do(ctx, http.MethodDelete, c.service+"/terminate-instance/"+url.PathEscape(instanceID), nil, nil)
}

// Statuses calls GET /v1/status.
func (c *Client) Statuses(ctx context.Context) (handlers.StatusesResponse, error) {
	var out handlers.StatusesResponse
	err := c.do(ctx, http.MethodGet, c.service+"/v1/status", nil, &out)
	return out, err
}

// Drain calls POST /v1/instances/{id}/drain.
func (c *Client) Drain(ctx context.Context, instanceID string) error {
	return c.do(ctx, http.MethodPost, c.service+"/v1/instances/"+url.PathEscape(instanceID)+"/drain", nil, nil)
}

// SaveSession uploads a credential archive.
func (c *Client) SaveSession(ctx context.Context, instanceID string, blob []byte) error {
	return c.raw(ctx, http.MethodPut, c.sessionURL(instanceID), blob, nil)
}

// LoadSession downloads a credential archive.
func (c *Client) LoadSession(ctx context.Context, instanceID string) ([]byte, error) {
	var out []byte
	err := c.raw(ctx, http.MethodGet, c.sessionURL(instanceID), nil, &out)
	return out, err
}

// SessionExists checks for a credential archive.
func (c *Client) SessionExists(ctx context.Context, instanceID string) (bool, error) {
	err := c.raw(ctx, http.MethodHead, c.sessionURL(instanceID), nil, nil)
	if IsStatus(err, http.StatusNotFound) {
		return false, nil
	}
	return err == nil, err
}

// DeleteSession removes a credential archive.
func (c *Client) DeleteSession(ctx context.Context, instanceID string) error {
	return c.raw(ctx, http.MethodDelete, c.sessionURL(instanceID), nil, nil)
}

// Pair simulates the phone scanning the pairing code of a fake client.
func (c *Client) Pair(ctx context.Context, instanceID, profile string) error {
	return c.do(ctx, http.MethodPost, c.engine+"/control/clients/"+url.PathEscape(instanceID)+"/pair", fakeengine.PairRequest{Profile: profile}, nil)
}

// Disconnect simulates the fake client losing its connection.
func (c *Client) Disconnect(ctx context.Context, instanceID string) error {
	return c.do(ctx, http.MethodPost, c.engine+"/control/clients/"+url.PathEscape(instanceID)+"/disconnect", nil, nil)
}

// EngineMessages lists the messages a fake client has sent.
func (c *Client) EngineMessages(ctx context.Context, instanceID string) ([]fakeengine.SentMessage, error) {
	var out []fakeengine.SentMessage
	err := c.do(ctx, http.MethodGet, c.engine+"/control/clients/"+url.PathEscape(instanceID)+"/messages", nil, &out)
	return out, err
}

func (c *Client) sessionURL(instanceID string) string {
	return c.service + "/v1/sessions/" + url.PathEscape(instanceID)
}

func (c *Client) do(ctx context.Context, method, target string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return c.send(req, func(b []byte) error {
		if out == nil || len(b) == 0 {
			return nil
		}
		if err := json.Unmarshal(b, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, target, err)
		}
		return nil
	})
}

func (c *Client) raw(ctx context.Context, method, target string, blob []byte, out *[]byte) error {
	var body io.Reader
	if blob != nil {
		body = bytes.NewReader(blob)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	if blob != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEOctetStream)
	}
	return c.send(req, func(b []byte) error {
		if out != nil {
			*out = b
		}
		return nil
	})
}

func (c *Client) send(req *http.Request, decode func([]byte) error) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed, err: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", req.Method, req.URL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(b))}
		var errResp service.ErrResponse
		if json.Unmarshal(b, &errResp) == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
			if errResp.Error != nil {
				apiErr.Code = errResp.Error.Code
			}
		}
		return apiErr
	}
	return decode(b)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
