package scenario

import (
	"context"
	"fmt"
	"time"

	"mysessions/handlers"
)

const scenarioHealth = "health"

func init() {
	Register(scenarioHealth, runHealth)
}

func runHealth(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := NewClient(cfg)

	root, err := client.Root(ctx)
	if err != nil {
		return fmt.Errorf("root: %w", err)
	}
	if root.Status != handlers.StatusServerUp {
		return fmt.Errorf("root: status=%q, want %q", root.Status, handlers.StatusServerUp)
	}

	health, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	if health.Status != handlers.StatusUp {
		return fmt.Errorf("health: status=%q, want %q", health.Status, handlers.StatusUp)
	}
	return nil
}
