package port

import (
	"context"
	"time"

	"github.com/bnema/kiosk/internal/domain/entity"
)

// SessionJournal records when kiosk sessions start and end and why.
// It never stores visited URLs or credentials.
type SessionJournal interface {
	Record(ctx context.Context, session *entity.Session) error
	MarkEnded(ctx context.Context, id entity.SessionID, endedAt time.Time) error
	Recent(ctx context.Context, limit int) ([]*entity.Session, error)
	Purge(ctx context.Context) (int64, error)
}

// BookmarkSource re-reads bookmarks from the configuration source.
type BookmarkSource interface {
	Bookmarks(ctx context.Context) ([]entity.Bookmark, error)
}

// ErrorPageRenderer produces the HTML shown in place of a failed page.
type ErrorPageRenderer interface {
	Render(outcome entity.LoadOutcome, startURL string) (string, error)
}
