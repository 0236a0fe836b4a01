package entity_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kiosk/internal/domain/entity"
)

func TestNewSession_StartsAtSequenceOne(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	s := entity.NewSession(now)

	require.NoError(t, s.Validate())
	assert.Equal(t, 1, s.Sequence)
	assert.Equal(t, entity.ResetStartup, s.Reason)
	assert.True(t, s.IsActive())
	assert.Regexp(t, regexp.MustCompile(`^20260302_093000_[0-9a-f]{4}$`), string(s.ID))
	assert.Len(t, s.ShortID(), 4)
}

func TestSession_ResetEndsCurrentAndChainsSequence(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	first := entity.NewSession(start)

	later := start.Add(5 * time.Minute)
	next := first.Reset(entity.ResetInactivity, later)

	assert.False(t, first.IsActive())
	assert.Equal(t, 5*time.Minute, first.Duration())
	assert.Equal(t, 2, next.Sequence)
	assert.Equal(t, entity.ResetInactivity, next.Reason)
	assert.True(t, next.StartedAt.Equal(later))
	assert.True(t, next.IsActive())
}

func TestSession_EndIsIdempotent(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	s := entity.NewSession(start)

	s.End(start.Add(time.Minute))
	s.End(start.Add(time.Hour))

	assert.Equal(t, time.Minute, s.Duration())
}

func TestSession_Validate(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		s    *entity.Session
	}{
		{"nil", nil},
		{"empty id", &entity.Session{Sequence: 1, Reason: entity.ResetStartup, StartedAt: now}},
		{"zero sequence", &entity.Session{ID: "x", Reason: entity.ResetStartup, StartedAt: now}},
		{"unknown reason", &entity.Session{ID: "x", Sequence: 1, Reason: "crash", StartedAt: now}},
		{"zero start", &entity.Session{ID: "x", Sequence: 1, Reason: entity.ResetFinished}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.s.Validate(), entity.ErrInvalidSession)
		})
	}
}
