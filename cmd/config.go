package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mysessions/adapters/mys3"
	"mysessions/service"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort                = "SERVICE_PORT_HTTP"
	envGRPCPort                = "SERVICE_PORT_GRPC"
	envAWSRegion               = "AWS_REGION"
	envAWSAccessKeyID          = "AWS_ACCESS_KEY_ID"
	envAWSSecretAccessKey      = "AWS_SECRET_ACCESS_KEY"
	envS3Endpoint              = "S3_ENDPOINT"
	envSessionBucket           = "SESSION_BUCKET"
	envSessionRoot             = "SESSION_ROOT"
	envSQSURL                  = "SQS_URL"
	envPairingTimeout          = "PAIRING_TIMEOUT"
	envChallengeWait           = "CHALLENGE_WAIT"
	envBackupSyncInterval      = "BACKUP_SYNC_INTERVAL"
	envQueueMaxBatch           = "QUEUE_MAX_BATCH"
	envQueueVisibilityTimeout  = "QUEUE_VISIBILITY_TIMEOUT"
	envQueueWait               = "QUEUE_WAIT"
	envReconnectMaxAttempts    = "RECONNECT_MAX_ATTEMPTS"
	envReconnectInitialBackoff = "RECONNECT_INITIAL_BACKOFF"
	envReconnectMaxBackoff     = "RECONNECT_MAX_BACKOFF"
	envRouteBySender           = "ROUTE_BY_SENDER"
	envCompletionMode          = "COMPLETION_MODE"
	envEngineURL               = "ENGINE_URL"
	envPublicURL               = "PUBLIC_URL"
	envRedisAddr               = "REDIS_ADDR"
	envStatusTTL               = "STATUS_TTL"
	envConfigPath              = "CONFIG_PATH"
)

const (
	defaultHTTPPort      = 3000
	defaultChallengeWait = 60 * time.Second
	maxQueueWait         = 20 * time.Second
	maxVisibilityTimeout = 12 * time.Hour
)

// AWSConfig holds the object store and queue connection settings.
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// S3Endpoint overrides the S3 endpoint (S3-compatible stores); path-style addressing is used.
	S3Endpoint string
}

// Config holds the full service configuration loaded by LoadConfig.
type Config struct {
	HTTPPort int
	// GRPCPort serves the gRPC health service; 0 disables it.
	GRPCPort int

	AWS           AWSConfig
	SessionBucket string
	SessionRoot   string
	// SQSURL is the work queue; empty disables draining.
	SQSURL string

	PairingTimeout     time.Duration
	ChallengeWait      time.Duration
	BackupSyncInterval time.Duration

	QueueMaxBatch          int
	QueueVisibilityTimeout time.Duration
	QueueWait              time.Duration
	RouteBySender          bool

	ReconnectMaxAttempts    int
	ReconnectInitialBackoff time.Duration
	ReconnectMaxBackoff     time.Duration

	CompletionMode string

	EngineURL string
	// PublicURL is where the engine sidecar reaches this service.
	PublicURL string

	// RedisAddr enables the status mirror when set.
	RedisAddr string
	StatusTTL time.Duration
}

// yamlConfig mirrors the environment variables. Every value is optional and the
// environment wins over the file.
type yamlConfig struct {
	HTTPPort                string `yaml:"service_port_http"`
	GRPCPort                string `yaml:"service_port_grpc"`
	AWSRegion               string `yaml:"aws_region"`
	S3Endpoint              string `yaml:"s3_endpoint"`
	SessionBucket           string `yaml:"session_bucket"`
	SessionRoot             string `yaml:"session_root"`
	SQSURL                  string `yaml:"sqs_url"`
	PairingTimeout          string `yaml:"pairing_timeout"`
	ChallengeWait           string `yaml:"challenge_wait"`
	BackupSyncInterval      string `yaml:"backup_sync_interval"`
	QueueMaxBatch           string `yaml:"queue_max_batch"`
	QueueVisibilityTimeout  string `yaml:"queue_visibility_timeout"`
	QueueWait               string `yaml:"queue_wait"`
	ReconnectMaxAttempts    string `yaml:"reconnect_max_attempts"`
	ReconnectInitialBackoff string `yaml:"reconnect_initial_backoff"`
	ReconnectMaxBackoff     string `yaml:"reconnect_max_backoff"`
	RouteBySender           string `yaml:"route_by_sender"`
	CompletionMode          string `yaml:"completion_mode"`
	EngineURL               string `yaml:"engine_url"`
	PublicURL               string `yaml:"public_url"`
	RedisAddr               string `yaml:"redis_addr"`
	StatusTTL               string `yaml:"status_ttl"`
}

// values keys the file settings by the env variable they stand for. Credentials are
// environment-only.
func (y *yamlConfig) values() settings {
	return settings{
		envHTTPPort:                y.HTTPPort,
		envGRPCPort:                y.GRPCPort,
		envAWSRegion:               y.AWSRegion,
		envS3Endpoint:              y.S3Endpoint,
		envSessionBucket:           y.SessionBucket,
		envSessionRoot:             y.SessionRoot,
		envSQSURL:                  y.SQSURL,
		envPairingTimeout:          y.PairingTimeout,
		envChallengeWait:           y.ChallengeWait,
		envBackupSyncInterval:      y.BackupSyncInterval,
		envQueueMaxBatch:           y.QueueMaxBatch,
		envQueueVisibilityTimeout:  y.QueueVisibilityTimeout,
		envQueueWait:               y.QueueWait,
		envReconnectMaxAttempts:    y.ReconnectMaxAttempts,
		envReconnectInitialBackoff: y.ReconnectInitialBackoff,
		envReconnectMaxBackoff:     y.ReconnectMaxBackoff,
		envRouteBySender:           y.RouteBySender,
		envCompletionMode:          y.CompletionMode,
		envEngineURL:               y.EngineURL,
		envPublicURL:               y.PublicURL,
		envRedisAddr:               y.RedisAddr,
		envStatusTTL:               y.StatusTTL,
	}
}

// loadYAMLConfig reads the YAML file at path. Called only from LoadConfig.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// settings resolves one value: environment first, then the YAML file.
type settings map[string]string

func (s settings) get(name string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return strings.TrimSpace(s[name])
}

func (s settings) intValue(name string, def int, lo int, hi int) (int, error) {
	v := s.get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("invalid %s: must be %d-%d, got %d", name, lo, hi, n)
	}
	return n, nil
}

// durationValue parses a Go duration; hi == 0 means no upper bound.
func (s settings) durationValue(name string, def time.Duration, lo time.Duration, hi time.Duration) (time.Duration, error) {
	v := s.get(name)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d < lo || (hi > 0 && d > hi) {
		return 0, fmt.Errorf("invalid %s: %s is out of range", name, d)
	}
	return d, nil
}

func (s settings) boolValue(name string, def bool) (bool, error) {
	v := s.get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", name, err)
	}
	return b, nil
}

func (s settings) urlValue(name string, def string) (string, error) {
	v := s.get(name)
	if v == "" {
		v = def
	}
	if v == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	u, err := url.Parse(v)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid %s: must be an absolute http(s) URL, got %q", name, v)
	}
	return strings.TrimRight(v, "/"), nil
}

// LoadConfig builds the configuration from environment variables and the optional YAML
// file at CONFIG_PATH. AWS_REGION and ENGINE_URL are required, everything else has a default.
func LoadConfig() (*Config, error) {
	s := settings{}
	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, err := filepath.Abs(configPath)
			if err != nil {
				return nil, err
			}
			configPath = abs
		}
		raw, err := loadYAMLConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
		s = raw.values()
	}

	config := &Config{
		AWS: AWSConfig{
			Region:          s.get(envAWSRegion),
			AccessKeyID:     strings.TrimSpace(os.Getenv(envAWSAccessKeyID)),
			SecretAccessKey: strings.TrimSpace(os.Getenv(envAWSSecretAccessKey)),
			S3Endpoint:      s.get(envS3Endpoint),
		},
		SessionBucket:  s.get(envSessionBucket),
		SessionRoot:    s.get(envSessionRoot),
		SQSURL:         s.get(envSQSURL),
		CompletionMode: s.get(envCompletionMode),
		RedisAddr:      s.get(envRedisAddr),
	}
	if config.AWS.Region == "" {
		return nil, fmt.Errorf("%s is required", envAWSRegion)
	}
	if config.SessionBucket == "" {
		config.SessionBucket = mys3.DefaultBucket
	}
	if config.CompletionMode == "" {
		config.CompletionMode = service.CompletionModeIdle
	}
	switch config.CompletionMode {
	case service.CompletionModeIdle, service.CompletionModeExit:
	default:
		return nil, fmt.Errorf("invalid %s: must be %s|%s, got %q", envCompletionMode, service.CompletionModeIdle, service.CompletionModeExit, config.CompletionMode)
	}

	var err error
	if config.HTTPPort, err = s.intValue(envHTTPPort, defaultHTTPPort, 1, 65535); err != nil {
		return nil, err
	}
	if config.GRPCPort, err = s.intValue(envGRPCPort, 0, 0, 65535); err != nil {
		return nil, err
	}
	if config.PairingTimeout, err = s.durationValue(envPairingTimeout, service.DefaultPairingTimeout, time.Second, 0); err != nil {
		return nil, err
	}
	if config.ChallengeWait, err = s.durationValue(envChallengeWait, defaultChallengeWait, time.Second, 0); err != nil {
		return nil, err
	}
	if config.BackupSyncInterval, err = s.durationValue(envBackupSyncInterval, 10*time.Minute, time.Minute, 0); err != nil {
		return nil, err
	}
	if config.QueueMaxBatch, err = s.intValue(envQueueMaxBatch, service.DefaultMaxBatch, 1, service.DefaultMaxBatch); err != nil {
		return nil, err
	}
	if config.QueueVisibilityTimeout, err = s.durationValue(envQueueVisibilityTimeout, service.DefaultVisibilityTimeout, time.Second, maxVisibilityTimeout); err != nil {
		return nil, err
	}
	if config.QueueWait, err = s.durationValue(envQueueWait, service.DefaultPollWait, 0, maxQueueWait); err != nil {
		return nil, err
	}
	if config.RouteBySender, err = s.boolValue(envRouteBySender, false); err != nil {
		return nil, err
	}
	if config.ReconnectMaxAttempts, err = s.intValue(envReconnectMaxAttempts, service.DefaultReconnectMaxAttempts, 0, 100); err != nil {
		return nil, err
	}
	if config.ReconnectInitialBackoff, err = s.durationValue(envReconnectInitialBackoff, service.DefaultReconnectInitialBackoff, time.Millisecond, 0); err != nil {
		return nil, err
	}
	if config.ReconnectMaxBackoff, err = s.durationValue(envReconnectMaxBackoff, service.DefaultReconnectMaxBackoff, time.Millisecond, 0); err != nil {
		return nil, err
	}
	if config.ReconnectMaxBackoff < config.ReconnectInitialBackoff {
		return nil, fmt.Errorf("invalid %s: must not be below %s", envReconnectMaxBackoff, envReconnectInitialBackoff)
	}
	if config.StatusTTL, err = s.durationValue(envStatusTTL, service.DefaultStatusTTL, time.Second, 0); err != nil {
		return nil, err
	}

	if config.EngineURL, err = s.urlValue(envEngineURL, ""); err != nil {
		return nil, err
	}
	if config.PublicURL, err = s.urlValue(envPublicURL, fmt.Sprintf("http://localhost:%d", config.HTTPPort)); err != nil {
		return nil, err
	}

	return config, nil
}
