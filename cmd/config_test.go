package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets the minimal environment and clears everything LoadConfig reads.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		envHTTPPort, envGRPCPort, envAWSAccessKeyID, envAWSSecretAccessKey, envS3Endpoint,
		envSessionBucket, envSessionRoot, envSQSURL, envPairingTimeout, envChallengeWait,
		envBackupSyncInterval, envQueueMaxBatch, envQueueVisibilityTimeout, envQueueWait,
		envReconnectMaxAttempts, envReconnectInitialBackoff, envReconnectMaxBackoff,
		envRouteBySender, envCompletionMode, envPublicURL, envRedisAddr, envStatusTTL, envConfigPath,
	} {
		t.Setenv(name, "")
	}
	t.Setenv(envAWSRegion, "us-east-1")
	t.Setenv(envEngineURL, "http://engine:8080/")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, 0, cfg.GRPCPort)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "ws-api-sessions", cfg.SessionBucket)
	assert.Empty(t, cfg.SessionRoot)
	assert.Empty(t, cfg.SQSURL)
	assert.Equal(t, 5*time.Minute, cfg.PairingTimeout)
	assert.Equal(t, 60*time.Second, cfg.ChallengeWait)
	assert.Equal(t, 10*time.Minute, cfg.BackupSyncInterval)
	assert.Equal(t, 10, cfg.QueueMaxBatch)
	assert.Equal(t, 30*time.Second, cfg.QueueVisibilityTimeout)
	assert.Equal(t, 5*time.Second, cfg.QueueWait)
	assert.False(t, cfg.RouteBySender)
	assert.Equal(t, 5, cfg.ReconnectMaxAttempts)
	assert.Equal(t, time.Second, cfg.ReconnectInitialBackoff)
	assert.Equal(t, time.Minute, cfg.ReconnectMaxBackoff)
	assert.Equal(t, "idle", cfg.CompletionMode)
	assert.Equal(t, "http://engine:8080", cfg.EngineURL)
	assert.Equal(t, "http://localhost:3000", cfg.PublicURL)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.StatusTTL)
}

func TestLoadConfig_Required(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantErr string
	}{
		{name: "region", unset: envAWSRegion, wantErr: "AWS_REGION is required"},
		{name: "engine", unset: envEngineURL, wantErr: "ENGINE_URL is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(envHTTPPort, "8080")
	t.Setenv(envGRPCPort, "9090")
	t.Setenv(envAWSAccessKeyID, "AKIA")
	t.Setenv(envAWSSecretAccessKey, "secret")
	t.Setenv(envS3Endpoint, "http://minio:9000")
	t.Setenv(envSessionBucket, "bucket")
	t.Setenv(envSessionRoot, "prod")
	t.Setenv(envSQSURL, "https://sqs.us-east-1.amazonaws.com/1/jobs")
	t.Setenv(envPairingTimeout, "2m")
	t.Setenv(envQueueMaxBatch, "3")
	t.Setenv(envQueueWait, "0s")
	t.Setenv(envRouteBySender, "true")
	t.Setenv(envCompletionMode, "exit")
	t.Setenv(envRedisAddr, "redis://localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 9090, cfg.GRPCPort)
	assert.Equal(t, AWSConfig{Region: "us-east-1", AccessKeyID: "AKIA", SecretAccessKey: "secret", S3Endpoint: "http://minio:9000"}, cfg.AWS)
	assert.Equal(t, "bucket", cfg.SessionBucket)
	assert.Equal(t, "prod", cfg.SessionRoot)
	assert.Equal(t, "https://sqs.us-east-1.amazonaws.com/1/jobs", cfg.SQSURL)
	assert.Equal(t, 2*time.Minute, cfg.PairingTimeout)
	assert.Equal(t, 3, cfg.QueueMaxBatch)
	assert.Equal(t, time.Duration(0), cfg.QueueWait)
	assert.True(t, cfg.RouteBySender)
	assert.Equal(t, "exit", cfg.CompletionMode)
	assert.Equal(t, "http://localhost:8080", cfg.PublicURL)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisAddr)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		value   string
		wantErr string
	}{
		{name: "http port not a number", env: envHTTPPort, value: "abc", wantErr: "invalid SERVICE_PORT_HTTP"},
		{name: "http port out of range", env: envHTTPPort, value: "70000", wantErr: "invalid SERVICE_PORT_HTTP"},
		{name: "grpc port negative", env: envGRPCPort, value: "-1", wantErr: "invalid SERVICE_PORT_GRPC"},
		{name: "batch too large", env: envQueueMaxBatch, value: "11", wantErr: "invalid QUEUE_MAX_BATCH"},
		{name: "batch zero", env: envQueueMaxBatch, value: "0", wantErr: "invalid QUEUE_MAX_BATCH"},
		{name: "wait too long", env: envQueueWait, value: "21s", wantErr: "invalid QUEUE_WAIT"},
		{name: "pairing timeout garbage", env: envPairingTimeout, value: "soon", wantErr: "invalid PAIRING_TIMEOUT"},
		{name: "route by sender garbage", env: envRouteBySender, value: "maybe", wantErr: "invalid ROUTE_BY_SENDER"},
		{name: "completion mode", env: envCompletionMode, value: "shutdown", wantErr: "invalid COMPLETION_MODE"},
		{name: "engine url relative", env: envEngineURL, value: "engine:8080", wantErr: "invalid ENGINE_URL"},
		{name: "public url scheme", env: envPublicURL, value: "ftp://host", wantErr: "invalid PUBLIC_URL"},
		{name: "max backoff below initial", env: envReconnectMaxBackoff, value: "10ms", wantErr: "invalid RECONNECT_MAX_BACKOFF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.env, tt.value)

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(envAWSRegion, "")
	t.Setenv(envQueueMaxBatch, "4")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
service_port_http: 4000
aws_region: eu-west-1
session_bucket: from-file
queue_max_batch: 7
pairing_timeout: 90s
route_by_sender: true
`), 0o600))
	t.Setenv(envConfigPath, path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.HTTPPort)
	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, "from-file", cfg.SessionBucket)
	assert.Equal(t, 4, cfg.QueueMaxBatch, "environment wins over the file")
	assert.Equal(t, 90*time.Second, cfg.PairingTimeout)
	assert.True(t, cfg.RouteBySender)
}

func TestLoadConfig_YAMLErrors(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queue_max_batch: [1"), 0o600))
	t.Setenv(envConfigPath, path)

	_, err = LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
