// Package entity holds the kiosk's domain types: sessions, bookmarks, zoom
// state and page load outcomes.
package entity

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

// SessionID uniquely identifies one kiosk user session.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
type SessionID string

// ResetReason records why a session started.
type ResetReason string

const (
	ResetStartup    ResetReason = "startup"
	ResetFinished   ResetReason = "finished"
	ResetInactivity ResetReason = "inactivity"
)

// Valid reports whether r is a known reason.
func (r ResetReason) Valid() bool {
	switch r {
	case ResetStartup, ResetFinished, ResetInactivity:
		return true
	}
	return false
}

// Session is the span between two resets of the browsing surface.
// No URLs or credentials are kept on it.
type Session struct {
	ID        SessionID
	Sequence  int
	Reason    ResetReason
	StartedAt time.Time
	EndedAt   *time.Time
}

var ErrInvalidSession = errors.New("invalid session")

// NewSession starts the first session of a kiosk run.
func NewSession(now time.Time) *Session {
	return &Session{
		ID:        GenerateSessionID(now),
		Sequence:  1,
		Reason:    ResetStartup,
		StartedAt: now.UTC(),
	}
}

// Reset ends s and returns its successor.
func (s *Session) Reset(reason ResetReason, now time.Time) *Session {
	s.End(now)
	return &Session{
		ID:        GenerateSessionID(now),
		Sequence:  s.Sequence + 1,
		Reason:    reason,
		StartedAt: now.UTC(),
	}
}

func (s *Session) ShortID() string {
	id := string(s.ID)
	if len(id) < 4 {
		return id
	}
	return id[len(id)-4:]
}

func (s *Session) IsActive() bool {
	return s != nil && s.EndedAt == nil
}

func (s *Session) End(endedAt time.Time) {
	if s.EndedAt != nil {
		return
	}
	endedAt = endedAt.UTC()
	s.EndedAt = &endedAt
}

// Duration returns how long the session lasted, or zero while active.
func (s *Session) Duration() time.Duration {
	if s.EndedAt == nil {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

func (s *Session) Validate() error {
	if s == nil {
		return ErrInvalidSession
	}
	if s.ID == "" || s.Sequence < 1 {
		return ErrInvalidSession
	}
	if !s.Reason.Valid() {
		return ErrInvalidSession
	}
	if s.StartedAt.IsZero() {
		return ErrInvalidSession
	}
	return nil
}

// GenerateSessionID creates a unique session identifier.
// Example: 20251217_205106_a7b3
func GenerateSessionID(now time.Time) SessionID {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return SessionID(now.Format("20060102_150405") + "_" + hex.EncodeToString(random))
}
