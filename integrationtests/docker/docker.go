// Package docker drives the docker-compose environment the integration scenarios run against.
package docker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultComposeFile is docker-compose.yml at the module root, relative to integrationtests/.
	DefaultComposeFile = "../docker-compose.yml"
	// ContainerStartupTimeout bounds the wait for every service to be running.
	ContainerStartupTimeout = 90 * time.Second
	// PostStartupDelay gives localstack time to create the bucket and queue.
	PostStartupDelay = 5 * time.Second
	// StatusCheckInterval is the interval between compose status checks.
	StatusCheckInterval = 2 * time.Second
)

// Service names used in docker-compose.yml.
const (
	ServiceOrchestrator = "mysessions"
	ServiceFakeEngine   = "fakeengine"
	ServiceLocalstack   = "localstack"
	ServiceRedis        = "redis"
)

// Compose runs docker-compose commands in the directory holding the compose file.
type Compose struct {
	dir string
}

// NewCompose resolves composePath and checks the file exists.
func NewCompose(composePath string) (*Compose, error) {
	if composePath == "" {
		composePath = DefaultComposeFile
	}
	abs, err := filepath.Abs(composePath)
	if err != nil {
		return nil, fmt.Errorf("resolve compose file path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("docker-compose.yml not found at %s: %w", abs, err)
	}
	return &Compose{dir: filepath.Dir(abs)}, nil
}

// Dir returns the compose working directory.
func (c *Compose) Dir() string {
	return c.dir
}

// Setup recreates the environment: down (volumes included, so no session survives from a
// previous run), up --build, then waits for every container to be running.
func (c *Compose) Setup(ctx context.Context) error {
	fmt.Fprintf(os.Stderr, "=== Setting up docker-compose environment in %s ===\n", c.dir)

	if err := c.run(ctx, "down", "-v"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: docker-compose down failed (this is okay if nothing was running): %v\n", err)
	}
	if err := c.run(ctx, "up", "-d", "--build"); err != nil {
		return fmt.Errorf("docker-compose up failed: %w", err)
	}
	if err := c.waitReady(ctx); err != nil {
		return fmt.Errorf("containers failed to start: %w", err)
	}

	fmt.Fprintf(os.Stderr, "All containers are running. Waiting %v before starting scenarios...\n", PostStartupDelay)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(PostStartupDelay):
	}
	return nil
}

// Stop stops a service gracefully (SIGTERM).
func (c *Compose) Stop(ctx context.Context, service string) error {
	return c.run(ctx, "stop", service)
}

// Start starts a stopped service.
func (c *Compose) Start(ctx context.Context, service string) error {
	return c.run(ctx, "start", service)
}

// Down removes the environment and its volumes.
func (c *Compose) Down(ctx context.Context) error {
	return c.run(ctx, "down", "-v")
}

func (c *Compose) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "docker-compose", args...)
	cmd.Dir = c.dir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (c *Compose) waitReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ContainerStartupTimeout)
	defer cancel()

	ticker := time.NewTicker(StatusCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for containers to start (waited %v)", ContainerStartupTimeout)
		case <-ticker.C:
			st, err := c.status(ctx)
			if err != nil {
				return fmt.Errorf("failed to check container status: %w", err)
			}
			if len(st.failed) > 0 {
				return fmt.Errorf("one or more containers failed to start: %s", strings.Join(st.failed, ", "))
			}
			if st.running > 0 && st.running == st.total {
				return nil
			}
		}
	}
}

type composeStatus struct {
	total   int
	running int
	failed  []string
}

// containerInfo is one line of `docker-compose ps --format json`.
type containerInfo struct {
	Name   string `json:"Name"`
	State  string `json:"State"`
	Status string `json:"Status"`
}

func (c *Compose) status(ctx context.Context) (composeStatus, error) {
	cmd := exec.CommandContext(ctx, "docker-compose", "ps", "--format", "json")
	cmd.Dir = c.dir
	output, err := cmd.Output()
	if err != nil {
		return composeStatus{}, fmt.Errorf("docker-compose ps failed: %w", err)
	}
	return parseStatus(string(output)), nil
}

func parseStatus(output string) composeStatus {
	var st composeStatus
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var info containerInfo
		if err := json.Unmarshal([]byte(line), &info); err != nil {
			continue
		}
		st.total++

		state := strings.ToLower(info.State)
		status := strings.ToLower(info.Status)
		switch {
		case state == "running":
			st.running++
		case state == "exited" || state == "dead" || strings.Contains(status, "restarting"):
			st.failed = append(st.failed, info.Name)
		}
	}
	return st
}
