package scenario

import (
	"context"
	"fmt"
	"time"

	"mysessions/domain"
	"mysessions/integrationtests/docker"
)

const scenarioRestartRehydrates = "restart_rehydrates"

func init() {
	Register(scenarioRestartRehydrates, runRestartRehydrates)
}

func runRestartRehydrates(ctx context.Context, cfg *Config) error {
	if cfg.Compose == nil {
		return fmt.Errorf("%s stops and starts the orchestrator and needs the compose environment", scenarioRestartRehydrates)
	}
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	client := NewClient(cfg)

	// 1. A paired instance with a stored session
	id, err := createReady(ctx, client, testProfile)
	if err != nil {
		return err
	}

	// 2. Restart the orchestrator process
	if err := cfg.Compose.Stop(ctx, docker.ServiceOrchestrator); err != nil {
		return fmt.Errorf("stop %s: %w", docker.ServiceOrchestrator, err)
	}
	if err := cfg.Compose.Start(ctx, docker.ServiceOrchestrator); err != nil {
		return fmt.Errorf("start %s: %w", docker.ServiceOrchestrator, err)
	}
	if err := waitFor(ctx, "orchestrator to come back", func(ctx context.Context) (bool, error) {
		_, err := client.Health(ctx)
		return err == nil, nil
	}); err != nil {
		return err
	}

	// 3. The instance is back under the same id, ready, without a new scan
	d, err := waitForState(ctx, client, id, domain.StateReady)
	if err != nil {
		return fmt.Errorf("rehydrate: %w", err)
	}
	if d.Profile == "" {
		return fmt.Errorf("rehydrate: profile is empty")
	}

	return client.TerminateInstance(ctx, id)
}
