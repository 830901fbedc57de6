package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"mysessions/integrationtests/docker"
	"mysessions/integrationtests/scenario"

	"github.com/spf13/cobra"
)

const (
	defaultServiceAddr = "http://localhost:3000"
	defaultEngineAddr  = "http://localhost:8090"
	defaultQueueURL    = "http://localhost:4566/000000000000/mysessions-jobs"
	defaultAWSEndpoint = "http://localhost:4566"
	defaultAWSRegion   = "us-east-1"
	scenarioTimeout    = 3 * time.Minute
)

// exitError carries the process exit code out of RunE.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "scenarios",
		Short:         "Integration scenarios for mysessions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCommand(), newRunCommand())
	return root
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available scenarios",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range scenario.Names() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "Set up the compose environment and run scenarios (all when none named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			serviceAddr, _ := cmd.Flags().GetString("addr")
			engineAddr, _ := cmd.Flags().GetString("engine-addr")
			queueURL, _ := cmd.Flags().GetString("queue-url")
			awsEndpoint, _ := cmd.Flags().GetString("aws-endpoint")
			awsRegion, _ := cmd.Flags().GetString("aws-region")
			composeFile, _ := cmd.Flags().GetString("compose-file")
			skipCompose, _ := cmd.Flags().GetBool("skip-compose")

			names := args
			if len(names) == 0 {
				names = scenario.Names()
			}

			cfg := &scenario.Config{
				ServiceAddr: serviceAddr,
				EngineAddr:  engineAddr,
				QueueURL:    queueURL,
				AWSRegion:   awsRegion,
				AWSEndpoint: awsEndpoint,
			}
			if !skipCompose {
				compose, err := docker.NewCompose(composeFile)
				if err != nil {
					return err
				}
				if err := compose.Setup(cmd.Context()); err != nil {
					return fmt.Errorf("failed to setup docker-compose environment: %w", err)
				}
				cfg.Compose = compose
			}

			return runAll(cmd, names, cfg)
		},
	}
	runCmd.Flags().String("addr", envOr("SERVICE_ADDR", defaultServiceAddr), "orchestrator base URL")
	runCmd.Flags().String("engine-addr", envOr("ENGINE_ADDR", defaultEngineAddr), "fake engine base URL")
	runCmd.Flags().String("queue-url", envOr("QUEUE_URL", defaultQueueURL), "work queue URL")
	runCmd.Flags().String("aws-endpoint", envOr("AWS_ENDPOINT", defaultAWSEndpoint), "emulated AWS endpoint")
	runCmd.Flags().String("aws-region", envOr("AWS_REGION", defaultAWSRegion), "AWS region")
	runCmd.Flags().String("compose-file", envOr("COMPOSE_FILE", docker.DefaultComposeFile), "path to docker-compose.yml")
	runCmd.Flags().Bool("skip-compose", false, "run against an environment that is already up")
	return runCmd
}

func runAll(cmd *cobra.Command, names []string, cfg *scenario.Config) error {
	out := cmd.OutOrStdout()
	var failed []string
	for _, name := range names {
		ctx, cancel := context.WithTimeout(cmd.Context(), scenarioTimeout)
		start := time.Now()
		err := scenario.Run(ctx, name, cfg)
		cancel()

		_, _ = fmt.Fprintln(out, "\n=== Scenario Result ===")
		_, _ = fmt.Fprintf(out, "Scenario: %s\n", name)
		_, _ = fmt.Fprintf(out, "Duration: %s\n", time.Since(start).Round(time.Millisecond))

		var unknown *scenario.UnknownScenarioError
		switch {
		case errors.As(err, &unknown):
			_, _ = fmt.Fprintf(out, "Status: FAILED\nError: %v\n", err)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "\navailable scenarios: %s\n", strings.Join(scenario.Names(), ", "))
			_, _ = fmt.Fprintln(out, "=====================")
			return &exitError{code: 2}
		case err != nil:
			_, _ = fmt.Fprintf(out, "Status: FAILED\nError: %v\n", err)
			failed = append(failed, name)
		default:
			_, _ = fmt.Fprintln(out, "Status: PASSED")
		}
		_, _ = fmt.Fprintln(out, "=====================")
	}

	if len(failed) > 0 {
		_, _ = fmt.Fprintf(out, "\n%d of %d scenarios failed: %s\n", len(failed), len(names), strings.Join(failed, ", "))
		return &exitError{code: 1}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCommand().ExecuteContext(ctx)
	if err == nil {
		return
	}
	var exit *exitError
	if errors.As(err, &exit) {
		stop()
		os.Exit(exit.code)
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	stop()
	os.Exit(1)
}
