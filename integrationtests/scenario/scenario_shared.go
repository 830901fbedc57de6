package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mysessions/domain"
	"mysessions/handlers"
)

const (
	pollInterval    = 500 * time.Millisecond
	testNumber      = "15550001111"
	testProfile     = "integration-test-profile"
	pairingPrefix   = "data:image/png;base64,"
	unknownInstance = "doesnotexist"
)

// waitFor polls cond until it reports done, returns an error, or ctx expires.
func waitFor(ctx context.Context, what string, cond func(ctx context.Context) (bool, error)) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		done, err := cond(ctx)
		if err == nil && done {
			return nil
		}
		if err != nil {
			lastErr = err
		}
		select {
		case <-ctx.Done():
			if lastErr != nil {
				return fmt.Errorf("timed out waiting for %s, last error: %w", what, lastErr)
			}
			return fmt.Errorf("timed out waiting for %s", what)
		case <-ticker.C:
		}
	}
}

// waitForState polls get-details until the instance reaches want.
func waitForState(ctx context.Context, client *Client, instanceID string, want domain.State) (handlers.DetailsResponse, error) {
	var last handlers.DetailsResponse
	err := waitFor(ctx, fmt.Sprintf("instance %s to be %s", instanceID, want), func(ctx context.Context) (bool, error) {
		d, err := client.GetDetails(ctx, instanceID)
		if err != nil {
			return false, err
		}
		last = d
		return d.State == string(want), nil
	})
	return last, err
}

// createPending creates an instance and checks it is waiting for a scan.
func createPending(ctx context.Context, client *Client) (string, error) {
	created, err := client.CreateInstance(ctx)
	if err != nil {
		return "", fmt.Errorf("create instance: %w", err)
	}
	if created.Status != handlers.StatusSuccess {
		return "", fmt.Errorf("create instance: status=%q, want %q", created.Status, handlers.StatusSuccess)
	}
	if created.InstanceId == "" {
		return "", fmt.Errorf("create instance: instanceId is empty")
	}
	if !strings.HasPrefix(created.QrCode, pairingPrefix) {
		return "", fmt.Errorf("create instance: qrCode=%.40q, want a PNG data URL", created.QrCode)
	}
	return created.InstanceId, nil
}

// createReady creates an instance and completes pairing through the fake engine.
func createReady(ctx context.Context, client *Client, profile string) (string, error) {
	id, err := createPending(ctx, client)
	if err != nil {
		return "", err
	}
	if err := client.Pair(ctx, id, profile); err != nil {
		return id, fmt.Errorf("pair %s: %w", id, err)
	}
	d, err := waitForState(ctx, client, id, domain.StateReady)
	if err != nil {
		return id, err
	}
	if d.Profile != profile {
		return id, fmt.Errorf("get details: profile=%q, want %q", d.Profile, profile)
	}
	return id, nil
}

// expectStatus checks that err is an API error with the given status and error code.
func expectStatus(op string, err error, status int, code string) error {
	if err == nil {
		return fmt.Errorf("%s: expected http %d, got success", op, status)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%s: expected http %d, got %w", op, status, err)
	}
	if apiErr.StatusCode != status {
		return fmt.Errorf("%s: status=%d, want %d (%s)", op, apiErr.StatusCode, status, apiErr.Message)
	}
	if code != "" && apiErr.Code != code {
		return fmt.Errorf("%s: error code=%q, want %q", op, apiErr.Code, code)
	}
	return nil
}
