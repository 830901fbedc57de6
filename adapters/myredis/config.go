package myredis

import (
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"
)

// ConfigOption adjusts the parsed options before the client is built.
type ConfigOption func(*redis.Options)

// NewRedisUniversalClient creates the client behind the status mirror. addr is a redis://
// or rediss:// URL, or a bare host:port.
func NewRedisUniversalClient(addr string, options ...ConfigOption) (redis.UniversalClient, error) {
	if !strings.Contains(addr, "://") {
		addr = "redis://" + addr
	}
	opts, err := redis.ParseURL(addr)
	if err != nil {
		return nil, fmt.Errorf("parse redis address failed, err: %w", err)
	}
	for _, opt := range options {
		opt(opts)
	}
	return redis.NewUniversalClient(universalOptions(opts)), nil
}

// universalOptions keeps a single address so the universal client stays a plain client.
func universalOptions(o *redis.Options) *redis.UniversalOptions {
	return &redis.UniversalOptions{
		Addrs:        []string{o.Addr},
		DB:           o.DB,
		Username:     o.Username,
		Password:     o.Password,
		TLSConfig:    o.TLSConfig,
		DialTimeout:  o.DialTimeout,
		ReadTimeout:  o.ReadTimeout,
		WriteTimeout: o.WriteTimeout,
		MaxRetries:   o.MaxRetries,
		PoolSize:     o.PoolSize,
		MinIdleConns: o.MinIdleConns,
		PoolTimeout:  o.PoolTimeout,
		IdleTimeout:  o.IdleTimeout,
	}
}
