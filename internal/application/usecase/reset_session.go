package usecase

import (
	"context"
	"time"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// ResetSessionInput carries the session being replaced.
type ResetSessionInput struct {
	Current *entity.Session
	Reason  entity.ResetReason
	// Bookmarks are kept when the config source cannot be re-read.
	Bookmarks []entity.Bookmark
}

// ResetSessionOutput is what the window needs to rebuild itself.
type ResetSessionOutput struct {
	Session   *entity.Session
	Bookmarks []entity.Bookmark
}

// ResetSessionUseCase starts a fresh kiosk session: it rotates the session
// record and re-reads bookmarks. Journal and config failures are logged and
// never block the reset.
type ResetSessionUseCase struct {
	journal   port.SessionJournal
	bookmarks port.BookmarkSource
	now       func() time.Time
}

// NewResetSessionUseCase creates the use case. journal may be nil when the
// journal is disabled.
func NewResetSessionUseCase(journal port.SessionJournal, bookmarks port.BookmarkSource) *ResetSessionUseCase {
	return &ResetSessionUseCase{
		journal:   journal,
		bookmarks: bookmarks,
		now:       time.Now,
	}
}

// WithClock overrides the time source.
func (uc *ResetSessionUseCase) WithClock(now func() time.Time) *ResetSessionUseCase {
	uc.now = now
	return uc
}

// Start opens the first session of the run.
func (uc *ResetSessionUseCase) Start(ctx context.Context) *ResetSessionOutput {
	session := entity.NewSession(uc.now())
	uc.record(ctx, session)

	return &ResetSessionOutput{
		Session:   session,
		Bookmarks: uc.loadBookmarks(ctx, nil),
	}
}

// Execute ends the current session and opens the next one.
func (uc *ResetSessionUseCase) Execute(ctx context.Context, input ResetSessionInput) *ResetSessionOutput {
	log := logging.FromContext(ctx)
	now := uc.now()

	var next *entity.Session
	if input.Current == nil {
		next = entity.NewSession(now)
		next.Reason = input.Reason
	} else {
		next = input.Current.Reset(input.Reason, now)
		if uc.journal != nil {
			if err := uc.journal.MarkEnded(ctx, input.Current.ID, now); err != nil {
				log.Warn().Err(err).Str("session", string(input.Current.ID)).Msg("failed to close session in journal")
			}
		}
	}
	uc.record(ctx, next)

	log.Info().
		Str("session", string(next.ID)).
		Int("sequence", next.Sequence).
		Str("reason", string(next.Reason)).
		Msg("session reset")

	return &ResetSessionOutput{
		Session:   next,
		Bookmarks: uc.loadBookmarks(ctx, input.Bookmarks),
	}
}

// End closes the session on shutdown.
func (uc *ResetSessionUseCase) End(ctx context.Context, session *entity.Session) {
	if session == nil {
		return
	}
	now := uc.now()
	session.End(now)
	if uc.journal == nil {
		return
	}
	if err := uc.journal.MarkEnded(ctx, session.ID, now); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to close session in journal")
	}
}

func (uc *ResetSessionUseCase) record(ctx context.Context, session *entity.Session) {
	if uc.journal == nil {
		return
	}
	if err := uc.journal.Record(ctx, session); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("session", string(session.ID)).Msg("failed to record session")
	}
}

func (uc *ResetSessionUseCase) loadBookmarks(ctx context.Context, fallback []entity.Bookmark) []entity.Bookmark {
	if uc.bookmarks == nil {
		return fallback
	}
	bookmarks, err := uc.bookmarks.Bookmarks(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to reload bookmarks, keeping previous set")
		return fallback
	}
	return bookmarks
}
