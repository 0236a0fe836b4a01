package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/domain/entity"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0s", FormatDuration(0))
	assert.Equal(t, "0s", FormatDuration(-time.Second))
	assert.Equal(t, "4m12s", FormatDuration(4*time.Minute+12*time.Second+300*time.Millisecond))
}

func TestSessionsCLIRenderer_RenderList(t *testing.T) {
	r := NewSessionsCLIRenderer(NewTheme())

	start := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	ended := entity.NewSession(start)
	ended.End(start.Add(3 * time.Minute))
	active := ended.Reset(entity.ResetInactivity, start.Add(3*time.Minute))

	out := r.RenderList(&usecase.SessionSummary{
		Sessions: []*entity.Session{active, ended},
		ByReason: map[entity.ResetReason]int{
			entity.ResetStartup:    1,
			entity.ResetInactivity: 1,
		},
		TotalCount: 2,
	}, 10)

	assert.Contains(t, out, "Sessions")
	assert.Contains(t, out, "running")
	assert.Contains(t, out, "3m0s")
	assert.Contains(t, out, "inactivity 1")
	assert.Contains(t, out, "startup 1")
}

func TestSessionsCLIRenderer_EmptyList(t *testing.T) {
	r := NewSessionsCLIRenderer(NewTheme())
	assert.Contains(t, r.RenderList(&usecase.SessionSummary{}, 0), "No sessions recorded.")
	assert.Contains(t, r.RenderList(nil, 0), "No sessions recorded.")
}
