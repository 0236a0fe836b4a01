package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

const defaultSessionListLimit = 20

// SessionSummary aggregates a list of sessions by reset reason.
type SessionSummary struct {
	Sessions   []*entity.Session
	ByReason   map[entity.ResetReason]int
	TotalCount int
}

// ListSessionsUseCase reads the session journal for the CLI.
type ListSessionsUseCase struct {
	journal port.SessionJournal
}

func NewListSessionsUseCase(journal port.SessionJournal) *ListSessionsUseCase {
	return &ListSessionsUseCase{journal: journal}
}

// Execute returns the most recent sessions, newest first.
func (uc *ListSessionsUseCase) Execute(ctx context.Context, limit int) (*SessionSummary, error) {
	if limit <= 0 {
		limit = defaultSessionListLimit
	}

	sessions, err := uc.journal.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	summary := &SessionSummary{
		Sessions:   sessions,
		ByReason:   make(map[entity.ResetReason]int),
		TotalCount: len(sessions),
	}
	for _, s := range sessions {
		summary.ByReason[s.Reason]++
	}

	logging.FromContext(ctx).Debug().Int("count", len(sessions)).Msg("listed sessions")
	return summary, nil
}

// Purge removes ended sessions. The running session stays.
func (uc *ListSessionsUseCase) Purge(ctx context.Context) (int64, error) {
	n, err := uc.journal.Purge(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	logging.FromContext(ctx).Info().Int64("deleted", n).Msg("session journal purged")
	return n, nil
}
