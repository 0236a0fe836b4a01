package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

const defaultRecentLimit = 20

type sessionJournal struct {
	db *sql.DB
}

var _ port.SessionJournal = (*sessionJournal)(nil)

// NewSessionJournal returns a journal backed by db.
func NewSessionJournal(db *sql.DB) port.SessionJournal {
	return &sessionJournal{db: db}
}

func (j *sessionJournal) Record(ctx context.Context, session *entity.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("session", string(session.ID)).
		Str("reason", string(session.Reason)).
		Int("sequence", session.Sequence).
		Msg("recording session")

	_, err := j.db.ExecContext(ctx,
		`INSERT INTO sessions (id, sequence, reason, started_at, ended_at) VALUES (?, ?, ?, ?, ?)`,
		string(session.ID), session.Sequence, string(session.Reason),
		toNanos(session.StartedAt), nullNanos(session.EndedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to record session %s: %w", session.ID, err)
	}
	return nil
}

func (j *sessionJournal) MarkEnded(ctx context.Context, id entity.SessionID, endedAt time.Time) error {
	_, err := j.db.ExecContext(ctx,
		`UPDATE sessions SET ended_at = ? WHERE id = ? AND ended_at IS NULL`,
		toNanos(endedAt), string(id),
	)
	if err != nil {
		return fmt.Errorf("failed to end session %s: %w", id, err)
	}
	return nil
}

func (j *sessionJournal) Recent(ctx context.Context, limit int) ([]*entity.Session, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := j.db.QueryContext(ctx,
		`SELECT id, sequence, reason, started_at, ended_at FROM sessions
		 ORDER BY started_at DESC, sequence DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*entity.Session
	for rows.Next() {
		var (
			id, reason string
			sequence   int
			startedAt  int64
			endedAt    sql.NullInt64
		)
		if err := rows.Scan(&id, &sequence, &reason, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		s := &entity.Session{
			ID:        entity.SessionID(id),
			Sequence:  sequence,
			Reason:    entity.ResetReason(reason),
			StartedAt: fromNanos(startedAt),
		}
		if endedAt.Valid {
			t := fromNanos(endedAt.Int64)
			s.EndedAt = &t
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}
	return sessions, nil
}

func (j *sessionJournal) Purge(ctx context.Context) (int64, error) {
	res, err := j.db.ExecContext(ctx, `DELETE FROM sessions WHERE ended_at IS NOT NULL`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged sessions: %w", err)
	}
	logging.FromContext(ctx).Info().Int64("count", n).Msg("session journal purged")
	return n, nil
}

func toNanos(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func nullNanos(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toNanos(*t), Valid: true}
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
