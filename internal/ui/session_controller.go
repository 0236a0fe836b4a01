package ui

import (
	"context"

	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// surface is the part of the main window a reset rebuilds.
type surface interface {
	Reset(bookmarks []entity.Bookmark) error
}

// sessionController runs resets: it rotates the session record and its log
// file, forgets per-session auth and certificate state, and rebuilds the
// surface.
type sessionController struct {
	ctx     context.Context
	resetUC *usecase.ResetSessionUseCase
	auth    *usecase.AuthenticateUseCase
	tls     *usecase.TLSPolicyUseCase
	logs    SessionLogSink

	surface surface
	// restartIdle rearms the inactivity watchdog.
	restartIdle func()

	current   *entity.Session
	bookmarks []entity.Bookmark
}

// start opens the first session and returns its bookmarks.
func (c *sessionController) start() []entity.Bookmark {
	out := c.resetUC.Start(c.ctx)
	c.current = out.Session
	c.bookmarks = out.Bookmarks
	c.startLog()
	return c.bookmarks
}

func (c *sessionController) reset(reason entity.ResetReason) {
	out := c.resetUC.Execute(c.ctx, usecase.ResetSessionInput{
		Current:   c.current,
		Reason:    reason,
		Bookmarks: c.bookmarks,
	})
	c.current = out.Session
	c.bookmarks = out.Bookmarks
	c.startLog()

	if c.auth != nil {
		c.auth.ResetAttempts()
	}
	if c.tls != nil {
		c.tls.Forget()
	}

	if c.surface != nil {
		if err := c.surface.Reset(c.bookmarks); err != nil {
			logging.FromContext(c.ctx).Error().Err(err).Str("reason", string(reason)).Msg("failed to rebuild browsing surface")
		}
	}
	// An inactivity reset is already rearmed by the watchdog.
	if reason != entity.ResetInactivity && c.restartIdle != nil {
		c.restartIdle()
	}
}

// startLog closes the previous session's log file and opens one for the
// current session.
func (c *sessionController) startLog() {
	if c.logs == nil || c.current == nil {
		return
	}
	if err := c.logs.StartSession(string(c.current.ID)); err != nil {
		logging.FromContext(c.ctx).Warn().Err(err).Str("session", string(c.current.ID)).Msg("failed to start session log")
	}
}

// setBookmarks records bookmarks that changed on disk mid-session.
func (c *sessionController) setBookmarks(bookmarks []entity.Bookmark) {
	c.bookmarks = bookmarks
}

func (c *sessionController) end() {
	c.resetUC.End(c.ctx, c.current)
}
