package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mysessions/adapters/bridge"
	"mysessions/adapters/myredis"
	"mysessions/adapters/mys3"
	"mysessions/adapters/mysqs"
	"mysessions/api"
	"mysessions/domain"
	"mysessions/handlers"
	"mysessions/interfaces"
	"mysessions/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/grpc"
)

const (
	engineRequestTimeout = 2 * time.Minute
	shutdownTimeout      = 30 * time.Second
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MySessions service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"aws_region", config.AWS.Region,
		"session_bucket", config.SessionBucket,
		"queue_enabled", config.SQSURL != "",
		"status_mirror_enabled", config.RedisAddr != "",
		"engine_url", config.EngineURL,
		"completion_mode", config.CompletionMode,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	awsCfg, err := loadAWSConfig(ctx, config.AWS)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load AWS configuration", "err", err)
		os.Exit(1)
	}

	var store interfaces.SessionStore
	{
		s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if config.AWS.S3Endpoint != "" {
				o.BaseEndpoint = aws.String(config.AWS.S3Endpoint)
				o.UsePathStyle = true
			}
		})
		store = mys3.NewSessionStore(s3Client, config.SessionBucket, config.SessionRoot)
	}

	var queue interfaces.Queue
	if config.SQSURL != "" {
		queue = mysqs.NewQueue(sqs.NewFromConfig(awsCfg), config.SQSURL)
	}

	var mirror *service.StatusMirror
	if config.RedisAddr != "" {
		redisClient, err := myredis.NewRedisUniversalClient(config.RedisAddr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")
		defer redisClient.Close()

		mirror = service.NewStatusMirror(myredis.NewStatusCache(redisClient), config.StatusTTL, logger)
	}

	now := func() time.Time {
		return time.Now().UTC()
	}

	var completion interfaces.CompletionNotifier
	switch config.CompletionMode {
	case service.CompletionModeExit:
		completion = service.NewExitPolicy(stop, logger)
	default:
		completion = service.NewIdlePolicy(logger)
	}

	// Create orchestrator
	orchestrator := service.NewOrchestrator(service.Dependencies{
		Store:      store,
		Queue:      queue,
		Engines:    bridge.NewEngineFactory(config.EngineURL, config.PublicURL, &http.Client{Timeout: engineRequestTimeout}, config.BackupSyncInterval),
		Renderer:   service.NewQRRenderer(),
		Clock:      service.NewTimeProvider(now),
		Completion: completion,
		Mirror:     mirror,
	}, service.OrchestratorConfig{
		PairingTimeout: config.PairingTimeout,
		ChallengeWait:  config.ChallengeWait,
		Receive: domain.ReceiveOptions{
			MaxMessages:       config.QueueMaxBatch,
			VisibilityTimeout: config.QueueVisibilityTimeout,
			WaitTime:          config.QueueWait,
		},
		RouteBySender: config.RouteBySender,
		Reconnect: service.ReconnectPolicy{
			MaxAttempts:    config.ReconnectMaxAttempts,
			InitialBackoff: config.ReconnectInitialBackoff,
			MaxBackoff:     config.ReconnectMaxBackoff,
		},
	}, logger)
	go orchestrator.RunMirror(ctx)

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		validator, err := handlers.NewOpenAPIValidator(api.OpenAPI)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI document", "err", err)
			os.Exit(1)
		}

		e = echo.New()
		e.HideBanner = true
		e.HidePort = true
		service.RegisterErrorHandler(e, logger)
		e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
		e.Use(middleware.CORS())
		e.Use(validator)
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(orchestrator, logger))
	}

	// Create gRPC health server
	var grpcServer *grpc.Server
	if config.GRPCPort > 0 {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
		if err != nil {
			level.Error(logger).Log("msg", "Failed to listen", "err", err)
			os.Exit(1)
		}

		healthServer := service.NewHealthServer(orchestrator.Health, logger)
		grpcServer = grpc.NewServer()
		healthServer.Register(grpcServer)
		go healthServer.Run(ctx, service.DefaultHealthSyncInterval)

		go func() {
			level.Info(logger).Log("msg", "Starting gRPC server", "addr", lis.Addr())
			if err := grpcServer.Serve(lis); err != nil {
				level.Error(logger).Log("msg", "gRPC server error", "err", err)
			}
		}()
	}

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
			stop()
		}
	}()

	// Bring back the instances whose sessions are stored
	go func() {
		n, err := orchestrator.Rehydrate(ctx)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to rehydrate stored sessions", "err", err)
			return
		}
		level.Info(logger).Log("msg", "Stored sessions rehydrated", "count", n)
	}()

	// Wait for interrupt signal or the exit completion policy
	<-ctx.Done()
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if err := orchestrator.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during orchestrator shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}

// loadAWSConfig resolves the shared AWS configuration. Static credentials are used only
// when both keys are set, otherwise the default provider chain applies.
func loadAWSConfig(ctx context.Context, cfg AWSConfig) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}
