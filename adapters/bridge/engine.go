package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mysessions/domain"
	"mysessions/helpers"
	"mysessions/interfaces"
)

// DefaultBackupSyncInterval is how often the sidecar re-uploads the credential blob.
const DefaultBackupSyncInterval = 10 * time.Minute

// EngineFactory creates engines backed by a protocol-automation sidecar reachable at
// baseURL. The sidecar reports lifecycle events to callbackURL and stores credentials
// through sessionURL. Panics on empty baseURL or callbackURL, or nil client.
//
// Sidecar API:
//
//	POST   {baseURL}/v1/clients/{id}/initialize  start or restart the client
//	POST   {baseURL}/v1/clients/{id}/messages    send a message
//	DELETE {baseURL}/v1/clients/{id}             destroy the client
func NewEngineFactory(baseURL string, callbackURL string, client *http.Client, backupSync time.Duration) interfaces.EngineFactory {
	if backupSync <= 0 {
		backupSync = DefaultBackupSyncInterval
	}
	return &engineFactory{
		baseURL:     helpers.StrPanic(baseURL, "adapters.bridge.engine.go: baseURL is required"),
		callbackURL: helpers.StrPanic(callbackURL, "adapters.bridge.engine.go: callbackURL is required"),
		client:      helpers.NilPanic(client, "adapters.bridge.engine.go: http client is required"),
		backupSync:  backupSync,
	}
}

type engineFactory struct {
	baseURL     string
	callbackURL string
	client      *http.Client
	backupSync  time.Duration
}

func (f *engineFactory) NewEngine(instanceID string, sink interfaces.EventSink) (interfaces.Engine, error) {
	if instanceID == "" {
		return nil, fmt.Errorf("instance id is required")
	}
	if sink == nil {
		return nil, fmt.Errorf("event sink is required")
	}
	return &engine{
		factory:    f,
		instanceID: instanceID,
		clientURL:  f.baseURL + "/v1/clients/" + url.PathEscape(instanceID),
		sink:       sink,
	}, nil
}

type engine struct {
	factory    *engineFactory
	instanceID string
	clientURL  string
	sink       interfaces.EventSink
}

// InitializeRequest is the body of POST /v1/clients/{id}/initialize.
type InitializeRequest struct {
	ClientID             string `json:"clientId"`
	EventsURL            string `json:"eventsUrl"`
	SessionURL           string `json:"sessionUrl"`
	BackupSyncIntervalMs int64  `json:"backupSyncIntervalMs"`
}

// InitializeResponse lists events the sidecar already holds for the client, e.g. ready
// when the client was alive before an orchestrator restart.
type InitializeResponse struct {
	Events []EventPayload `json:"events"`
}

// EventPayload is the wire shape of a lifecycle event sent by the sidecar.
type EventPayload struct {
	Type    string `json:"type"`
	QR      string `json:"qr,omitempty"`
	Profile string `json:"profile,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// ToEvent converts the payload to a domain event.
func (p EventPayload) ToEvent() domain.Event {
	return domain.Event{
		Kind:      domain.EventKind(p.Type),
		Challenge: p.QR,
		Profile:   p.Profile,
		Reason:    p.Reason,
	}
}

// SendRequest is the body of POST /v1/clients/{id}/messages.
type SendRequest struct {
	ChatID string `json:"chatId"`
	Body   string `json:"body"`
}

// SendResponse is the sidecar's answer to a send.
type SendResponse struct {
	MessageID string `json:"messageId"`
	ChatID    string `json:"chatId"`
}

// Initialize asks the sidecar to start the client. Events returned inline are passed to the sink.
func (e *engine) Initialize(ctx context.Context) error {
	id := url.PathEscape(e.instanceID)
	req := InitializeRequest{
		ClientID:             e.instanceID,
		EventsURL:            e.factory.callbackURL + "/v1/instances/" + id + "/events",
		SessionURL:           e.factory.callbackURL + "/v1/sessions/" + id,
		BackupSyncIntervalMs: e.factory.backupSync.Milliseconds(),
	}
	var resp InitializeResponse
	if err := e.do(ctx, http.MethodPost, e.clientURL+"/initialize", req, &resp); err != nil {
		return fmt.Errorf("initialize client %s: %w", e.instanceID, err)
	}
	for _, ev := range resp.Events {
		e.sink(ev.ToEvent())
	}
	return nil
}

func (e *engine) SendMessage(ctx context.Context, chatID string, body string) (domain.DeliveryResult, error) {
	var resp SendResponse
	if err := e.do(ctx, http.MethodPost, e.clientURL+"/messages", SendRequest{ChatID: chatID, Body: body}, &resp); err != nil {
		return domain.DeliveryResult{}, fmt.Errorf("send message via client %s: %w", e.instanceID, err)
	}
	if resp.ChatID == "" {
		resp.ChatID = chatID
	}
	return domain.DeliveryResult{MessageID: resp.MessageID, ChatID: resp.ChatID}, nil
}

// Destroy releases the sidecar client. A client the sidecar no longer knows is already destroyed.
func (e *engine) Destroy(ctx context.Context) error {
	err := e.do(ctx, http.MethodDelete, e.clientURL, nil, nil)
	if err != nil && !isStatus(err, http.StatusNotFound) {
		return fmt.Errorf("destroy client %s: %w", e.instanceID, err)
	}
	return nil
}

// statusError is returned for a non-2xx sidecar response.
type statusError struct {
	Status int
	Body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("sidecar returned %d: %s", e.Status, e.Body)
}

func isStatus(err error, status int) bool {
	var se *statusError
	return errors.As(err, &se) && se.Status == status
}

func (e *engine) do(ctx context.Context, method string, reqURL string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.factory.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &statusError{Status: resp.StatusCode, Body: string(bytes.TrimSpace(msg))}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
