// Package fakeengine is a scriptable stand-in for the protocol-automation sidecar used by
// the integration scenarios. It speaks the sidecar API of adapters/bridge and exposes
// control routes that play the part of the phone (pairing, disconnects).
package fakeengine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"mysessions/adapters/bridge"
	"mysessions/domain"
	"mysessions/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// SentMessage is one message accepted by a fake client.
type SentMessage struct {
	MessageID string `json:"messageId"`
	ChatID    string `json:"chatId"`
	Body      string `json:"body"`
}

// PairRequest is the body of POST /control/clients/{id}/pair.
type PairRequest struct {
	Profile string `json:"profile"`
}

type client struct {
	id         string
	eventsURL  string
	sessionURL string
	paired     bool
	messages   []SentMessage
}

// Server holds the fake clients.
type Server struct {
	http   *http.Client
	logger log.Logger

	mu      sync.Mutex
	clients map[string]*client
	seq     int
}

// NewServer creates a fake engine. Panics on nil logger.
func NewServer(logger log.Logger) *Server {
	return &Server{
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  log.With(helpers.NilPanic(logger, "integrationtests.fakeengine.server.go: logger is required"), "component", "fakeengine"),
		clients: make(map[string]*client),
	}
}

// Register adds the sidecar and control routes.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/clients/:id/initialize", s.initialize)
	e.POST("/v1/clients/:id/messages", s.send)
	e.DELETE("/v1/clients/:id", s.destroy)

	e.POST("/control/clients/:id/pair", s.pair)
	e.POST("/control/clients/:id/disconnect", s.disconnect)
	e.GET("/control/clients/:id/messages", s.messages)
	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
}

// initialize answers with ready when the orchestrator already stores a session for the
// client, otherwise with a pairing challenge.
func (s *Server) initialize(c echo.Context) error {
	var req bridge.InitializeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id := c.Param("id")

	stored, err := s.sessionStored(c.Request().Context(), req.SessionURL)
	if err != nil {
		level.Warn(s.logger).Log("msg", "Session lookup failed, asking for pairing", "instance_id", id, "err", err)
	}

	s.mu.Lock()
	cl, ok := s.clients[id]
	if !ok {
		cl = &client{id: id}
		s.clients[id] = cl
	}
	cl.eventsURL = req.EventsURL
	cl.sessionURL = req.SessionURL
	cl.paired = stored
	s.mu.Unlock()

	var events []bridge.EventPayload
	if stored {
		events = []bridge.EventPayload{
			{Type: string(domain.EventAuthenticated)},
			{Type: string(domain.EventReady), Profile: "restored-" + id},
		}
	} else {
		events = []bridge.EventPayload{{Type: string(domain.EventPairingChallenge), QR: "2@fake-challenge-" + id}}
	}
	level.Info(s.logger).Log("msg", "Client initialized", "instance_id", id, "restored", stored)
	return c.JSON(http.StatusOK, bridge.InitializeResponse{Events: events})
}

func (s *Server) send(c echo.Context) error {
	var req bridge.SendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cl, ok := s.clients[c.Param("id")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown client")
	}
	if !cl.paired {
		return echo.NewHTTPError(http.StatusConflict, "client is not paired")
	}
	s.seq++
	msg := SentMessage{MessageID: fmt.Sprintf("fake-%d", s.seq), ChatID: req.ChatID, Body: req.Body}
	cl.messages = append(cl.messages, msg)
	return c.JSON(http.StatusOK, bridge.SendResponse{MessageID: msg.MessageID, ChatID: msg.ChatID})
}

func (s *Server) destroy(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.Param("id")
	if _, ok := s.clients[id]; !ok {
		return c.NoContent(http.StatusNotFound)
	}
	delete(s.clients, id)
	return c.NoContent(http.StatusNoContent)
}

// pair plays a successful scan: the credential archive is uploaded first, then the
// lifecycle events follow in the order the real engine emits them.
func (s *Server) pair(c echo.Context) error {
	var req PairRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cl, ok := s.client(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown client")
	}
	ctx := c.Request().Context()

	if err := s.post(ctx, cl.eventsURL, bridge.EventPayload{Type: string(domain.EventAuthenticated)}); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	if err := s.put(ctx, cl.sessionURL, []byte("PK\x03\x04fake-session-"+cl.id)); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	s.mu.Lock()
	if live, ok := s.clients[cl.id]; ok {
		live.paired = true
	}
	s.mu.Unlock()
	if err := s.post(ctx, cl.eventsURL, bridge.EventPayload{Type: string(domain.EventReady), Profile: req.Profile}); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) disconnect(c echo.Context) error {
	cl, ok := s.client(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown client")
	}
	if err := s.post(c.Request().Context(), cl.eventsURL, bridge.EventPayload{Type: string(domain.EventDisconnected), Reason: "NAVIGATION"}); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) messages(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cl, ok := s.clients[c.Param("id")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown client")
	}
	return c.JSON(http.StatusOK, append([]SentMessage{}, cl.messages...))
}

func (s *Server) client(id string) (client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cl, ok := s.clients[id]
	if !ok {
		return client{}, false
	}
	return *cl, true
}

func (s *Server) sessionStored(ctx context.Context, sessionURL string) (bool, error) {
	if sessionURL == "" {
		return false, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, sessionURL, nil)
	if err != nil {
		return false, err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("session lookup returned %d", resp.StatusCode)
	}
}

func (s *Server) post(ctx context.Context, target string, ev bridge.EventPayload) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return s.do(ctx, http.MethodPost, target, echo.MIMEApplicationJSON, b)
}

func (s *Server) put(ctx context.Context, target string, blob []byte) error {
	return s.do(ctx, http.MethodPut, target, echo.MIMEOctetStream, blob)
}

func (s *Server) do(ctx context.Context, method, target, contentType string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set(echo.HeaderContentType, contentType)
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s returned %d: %s", method, target, resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
