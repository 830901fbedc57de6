package service

import (
	"context"
	"sort"
	"time"

	"mysessions/domain"
	"mysessions/helpers"
	"mysessions/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultStatusTTL is how long a mirrored instance status lives without a refresh.
const DefaultStatusTTL = 10 * time.Minute

const mirrorWriteTimeout = 2 * time.Second

// StatusMirror publishes instance status snapshots to a shared cache so other processes
// (dashboards, a gateway) can see which instances this process serves. Entries expire by
// TTL and are refreshed every TTL/2, so a crashed process disappears from the mirror.
// Pairing artifacts are never mirrored.
type StatusMirror struct {
	cache  interfaces.Cache[domain.InstanceInfo]
	ttl    time.Duration
	logger log.Logger
}

// NewStatusMirror creates a mirror. Panics on nil cache or logger.
func NewStatusMirror(cache interfaces.Cache[domain.InstanceInfo], ttl time.Duration, logger log.Logger) *StatusMirror {
	return &StatusMirror{
		cache:  helpers.NilPanic(cache, "service.status_mirror.go: cache is required"),
		ttl:    helpers.DurationOr(ttl, DefaultStatusTTL),
		logger: log.With(helpers.NilPanic(logger, "service.status_mirror.go: logger is required"), "component", "status_mirror"),
	}
}

// Publish writes the snapshot. Errors are logged, never returned.
func (m *StatusMirror) Publish(ctx context.Context, info domain.InstanceInfo) {
	info.PairingArtifact = ""
	ctx, cancel := context.WithTimeout(ctx, mirrorWriteTimeout)
	defer cancel()
	if err := m.cache.WriteValue(ctx, info.InstanceID, info, int(m.ttl.Milliseconds())); err != nil {
		level.Warn(m.logger).Log("msg", "Failed to publish instance status", "instance_id", info.InstanceID, "err", err)
	}
}

// Remove deletes the mirrored snapshot.
func (m *StatusMirror) Remove(ctx context.Context, instanceID string) {
	ctx, cancel := context.WithTimeout(ctx, mirrorWriteTimeout)
	defer cancel()
	if err := m.cache.DeleteValue(ctx, instanceID); err != nil {
		level.Warn(m.logger).Log("msg", "Failed to remove instance status", "instance_id", instanceID, "err", err)
	}
}

// Run republishes snapshot() every TTL/2 until ctx is done.
func (m *StatusMirror) Run(ctx context.Context, snapshot func() []domain.InstanceInfo) {
	ticker := time.NewTicker(m.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.refresh(ctx, snapshot())
		}
	}
}

func (m *StatusMirror) refresh(ctx context.Context, infos []domain.InstanceInfo) {
	for _, info := range infos {
		m.Publish(ctx, info)
	}
}

// Snapshot returns every status currently mirrored, across all processes sharing the cache.
func (m *StatusMirror) Snapshot(ctx context.Context) ([]domain.InstanceInfo, error) {
	infos, err := m.cache.ListAllValues(ctx)
	if err != nil {
		if IsEntityNotFoundError(err) {
			return []domain.InstanceInfo{}, nil
		}
		return nil, err
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].InstanceID < infos[j].InstanceID })
	return infos, nil
}
