package scenario

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"mysessions/domain"
	"mysessions/service"
)

const scenarioCreateAndTerminate = "create_and_terminate"

func init() {
	Register(scenarioCreateAndTerminate, runCreateAndTerminate)
}

func runCreateAndTerminate(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := NewClient(cfg)

	// 1. Create an instance that waits for a scan
	id, err := createPending(ctx, client)
	if err != nil {
		return err
	}

	// 2. It is listed, without a profile
	details, err := client.GetDetails(ctx, id)
	if err != nil {
		return fmt.Errorf("get details: %w", err)
	}
	if details.State != string(domain.StateAwaitingPairing) {
		return fmt.Errorf("get details: state=%q, want %q", details.State, domain.StateAwaitingPairing)
	}
	if details.Message != service.ProfileNotYetAvailable {
		return fmt.Errorf("get details: message=%q, want %q", details.Message, service.ProfileNotYetAvailable)
	}

	list, err := client.ListInstances(ctx)
	if err != nil {
		return fmt.Errorf("list instances: %w", err)
	}
	found := false
	for _, inst := range list.Instances {
		if inst.InstanceId == id {
			found = true
			if inst.Profile != service.ProfileNotLoggedIn {
				return fmt.Errorf("list instances: profile=%q, want %q", inst.Profile, service.ProfileNotLoggedIn)
			}
		}
	}
	if !found {
		return fmt.Errorf("list instances: %s not listed", id)
	}

	// 3. Sending before pairing completes is refused
	_, err = client.SendMessage(ctx, id, testNumber, "too early")
	if err == nil {
		return fmt.Errorf("send message before ready: expected an error")
	}

	// 4. Terminate, then the id is gone
	if err := client.TerminateInstance(ctx, id); err != nil {
		return fmt.Errorf("terminate: %w", err)
	}
	_, err = client.GetDetails(ctx, id)
	if err := expectStatus("get details after terminate", err, http.StatusNotFound, service.ErrEntityNotFound); err != nil {
		return err
	}
	err = client.TerminateInstance(ctx, id)
	return expectStatus("terminate twice", err, http.StatusNotFound, service.ErrEntityNotFound)
}
