package handlers

import (
	"testing"
	"time"

	"mysessions/domain"
	"mysessions/service"

	"github.com/stretchr/testify/assert"
)

func TestToInstancesResponse(t *testing.T) {
	tests := []struct {
		name      string
		infos     []domain.InstanceInfo
		wantLen   int
		wantFirst *InstanceSummary
	}{
		{name: "nil", infos: nil, wantLen: 0},
		{name: "empty", infos: []domain.InstanceInfo{}, wantLen: 0},
		{
			name:      "profile pending",
			infos:     []domain.InstanceInfo{{InstanceID: "a", State: domain.StateInitializing}},
			wantLen:   1,
			wantFirst: &InstanceSummary{InstanceId: "a", Profile: service.ProfileNotLoggedIn, State: "initializing"},
		},
		{
			name:      "profile resolved",
			infos:     []domain.InstanceInfo{{InstanceID: "a", State: domain.StateReady, Profile: "p"}},
			wantLen:   1,
			wantFirst: &InstanceSummary{InstanceId: "a", Profile: "p", State: "ready"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toInstancesResponse(tt.infos)
			assert.Equal(t, StatusSuccess, got.Status)
			assert.NotNil(t, got.Instances)
			assert.Len(t, got.Instances, tt.wantLen)
			if tt.wantFirst != nil {
				assert.Equal(t, *tt.wantFirst, got.Instances[0])
			}
		})
	}
}

func TestToDetailsResponse(t *testing.T) {
	got := toDetailsResponse(domain.InstanceInfo{InstanceID: "a", State: domain.StateAuthenticated})
	assert.Equal(t, service.ProfileNotYetAvailable, got.Message)
	assert.Empty(t, got.Profile)

	got = toDetailsResponse(domain.InstanceInfo{InstanceID: "a", State: domain.StateReady, Profile: "p"})
	assert.Empty(t, got.Message)
	assert.Equal(t, "p", got.Profile)
}

func TestToStatusesResponse(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	got := toStatusesResponse([]domain.InstanceInfo{{InstanceID: "a", State: domain.StateDisconnected, UpdatedAt: ts}})
	assert.Equal(t, []InstanceStatus{{InstanceId: "a", State: "disconnected", UpdatedAt: "2026-01-02T02:04:05Z"}}, got.Instances)
}

func TestToCreateInstanceResponse(t *testing.T) {
	got := toCreateInstanceResponse(domain.InstanceInfo{InstanceID: "a", PairingArtifact: "data:x"})
	assert.Equal(t, CreateInstanceResponse{Status: StatusSuccess, Message: "Instance created successfully.", InstanceId: "a", QrCode: "data:x"}, got)
}
