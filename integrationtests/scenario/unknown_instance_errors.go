package scenario

import (
	"context"
	"net/http"
	"time"

	"mysessions/service"
)

const scenarioUnknownInstanceErrors = "unknown_instance_errors"

func init() {
	Register(scenarioUnknownInstanceErrors, runUnknownInstanceErrors)
}

func runUnknownInstanceErrors(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client := NewClient(cfg)

	checks := []struct {
		op     string
		call   func() error
		status int
		code   string
	}{
		{"get details", func() error { _, err := client.GetDetails(ctx, unknownInstance); return err }, http.StatusNotFound, service.ErrEntityNotFound},
		{"restart", func() error { return client.RestartInstance(ctx, unknownInstance) }, http.StatusNotFound, service.ErrEntityNotFound},
		{"terminate", func() error { return client.TerminateInstance(ctx, unknownInstance) }, http.StatusNotFound, service.ErrEntityNotFound},
		{"send message", func() error { _, err := client.SendMessage(ctx, unknownInstance, testNumber, "hi"); return err }, http.StatusNotFound, service.ErrEntityNotFound},
		{"send message without number", func() error { _, err := client.SendMessage(ctx, unknownInstance, "", "hi"); return err }, http.StatusBadRequest, service.ErrBadParameter},
		{"drain", func() error { return client.Drain(ctx, unknownInstance) }, http.StatusNotFound, ""},
		{"load session", func() error { _, err := client.LoadSession(ctx, unknownInstance); return err }, http.StatusNotFound, service.ErrEntityNotFound},
	}
	for _, c := range checks {
		if err := expectStatus(c.op, c.call(), c.status, c.code); err != nil {
			return err
		}
	}
	return nil
}
