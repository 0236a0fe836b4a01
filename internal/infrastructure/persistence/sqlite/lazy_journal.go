package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// LazyJournal is a SessionJournal whose database is opened on first use.
// The SQLite WASM compile and migrations then stay off the paths that never
// touch the journal, such as `kiosk config path`.
type LazyJournal struct {
	dbPath string

	once  sync.Once
	mu    sync.RWMutex
	db    *sql.DB
	inner port.SessionJournal
	err   error
}

var _ port.SessionJournal = (*LazyJournal)(nil)

// NewLazyJournal returns a journal for the database at dbPath. Nothing is
// opened yet.
func NewLazyJournal(dbPath string) *LazyJournal {
	return &LazyJournal{dbPath: dbPath}
}

// Open connects to the database if that has not happened yet. A failed open
// is remembered and returned by every later call.
func (l *LazyJournal) Open(ctx context.Context) error {
	_, err := l.journal(ctx)
	return err
}

func (l *LazyJournal) journal(ctx context.Context) (port.SessionJournal, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("opening session journal")

		db, err := NewConnection(ctx, l.dbPath)

		l.mu.Lock()
		defer l.mu.Unlock()
		if err != nil {
			l.err = err
			log.Error().Err(err).Msg("session journal unavailable")
			return
		}
		l.db = db
		l.inner = NewSessionJournal(db)
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("open session journal: %w", l.err)
	}
	if l.inner == nil {
		return nil, fmt.Errorf("session journal %s is closed", l.dbPath)
	}
	return l.inner, nil
}

func (l *LazyJournal) Record(ctx context.Context, session *entity.Session) error {
	j, err := l.journal(ctx)
	if err != nil {
		return err
	}
	return j.Record(ctx, session)
}

func (l *LazyJournal) MarkEnded(ctx context.Context, id entity.SessionID, endedAt time.Time) error {
	j, err := l.journal(ctx)
	if err != nil {
		return err
	}
	return j.MarkEnded(ctx, id, endedAt)
}

func (l *LazyJournal) Recent(ctx context.Context, limit int) ([]*entity.Session, error) {
	j, err := l.journal(ctx)
	if err != nil {
		return nil, err
	}
	return j.Recent(ctx, limit)
}

func (l *LazyJournal) Purge(ctx context.Context) (int64, error) {
	j, err := l.journal(ctx)
	if err != nil {
		return 0, err
	}
	return j.Purge(ctx)
}

// IsOpen reports whether the database connection exists.
func (l *LazyJournal) IsOpen() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyJournal) Path() string {
	return l.dbPath
}

// Close closes the database if it was opened. The journal cannot be
// reopened afterwards.
func (l *LazyJournal) Close() error {
	// Settle a concurrent first open before closing.
	l.once.Do(func() {})

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	err := Close(l.db)
	l.db = nil
	l.inner = nil
	return err
}
