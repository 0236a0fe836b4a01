package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/kiosk/internal/application/port/mocks"
	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fakeSurface struct {
	resets [][]entity.Bookmark
	err    error
}

func (s *fakeSurface) Reset(bookmarks []entity.Bookmark) error {
	s.resets = append(s.resets, bookmarks)
	return s.err
}

func newController(t *testing.T, source *portmocks.MockBookmarkSource) (*sessionController, *fakeSurface, *int) {
	t.Helper()
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	surface := &fakeSurface{}
	restarts := 0
	c := &sessionController{
		ctx:         testContext(),
		resetUC:     usecase.NewResetSessionUseCase(nil, source).WithClock(func() time.Time { return now }),
		auth:        usecase.NewAuthenticateUseCase(usecase.Credentials{User: "kiosk", Password: "pw"}, 1),
		tls:         usecase.NewTLSPolicyUseCase(true),
		surface:     surface,
		restartIdle: func() { restarts++ },
	}
	return c, surface, &restarts
}

func TestSessionController_FinishedResetRebuildsAndRestartsWatchdog(t *testing.T) {
	source := portmocks.NewMockBookmarkSource(t)
	home := []entity.Bookmark{{Label: "Home", URL: "https://home.example.org"}}
	source.EXPECT().Bookmarks(mock.Anything).Return(home, nil)

	c, surface, restarts := newController(t, source)
	c.start()
	first := c.current

	c.reset(entity.ResetFinished)

	require.Len(t, surface.resets, 1)
	assert.Equal(t, home, surface.resets[0])
	assert.Equal(t, 1, *restarts)
	assert.Equal(t, first.Sequence+1, c.current.Sequence)
	assert.Equal(t, entity.ResetFinished, c.current.Reason)
}

func TestSessionController_InactivityResetLeavesWatchdogAlone(t *testing.T) {
	source := portmocks.NewMockBookmarkSource(t)
	source.EXPECT().Bookmarks(mock.Anything).Return(nil, nil)

	c, surface, restarts := newController(t, source)
	c.start()
	c.reset(entity.ResetInactivity)

	assert.Len(t, surface.resets, 1)
	assert.Zero(t, *restarts)
}

func TestSessionController_ResetForgetsAuthAndCertificateState(t *testing.T) {
	source := portmocks.NewMockBookmarkSource(t)
	source.EXPECT().Bookmarks(mock.Anything).Return(nil, nil)

	c, _, _ := newController(t, source)
	ctx := c.ctx
	c.start()

	challenge := usecase.AuthChallenge{Host: "intranet", IsRetry: true}
	assert.True(t, c.auth.Handle(ctx, challenge).Supply)
	assert.False(t, c.auth.Handle(ctx, challenge).Supply)

	failure := usecase.TLSFailure{FailingURI: "https://intranet/", Host: "intranet"}
	assert.True(t, c.tls.Handle(ctx, failure))
	assert.False(t, c.tls.Handle(ctx, failure))

	c.reset(entity.ResetFinished)

	assert.True(t, c.auth.Handle(ctx, challenge).Supply)
	assert.True(t, c.tls.Handle(ctx, failure))
}

func TestSessionController_KeepsBookmarksWhenReloadFails(t *testing.T) {
	source := portmocks.NewMockBookmarkSource(t)
	home := []entity.Bookmark{{Label: "Home", URL: "https://home.example.org"}}
	source.EXPECT().Bookmarks(mock.Anything).Return(home, nil).Once()
	source.EXPECT().Bookmarks(mock.Anything).Return(nil, errors.New("parse error")).Once()

	c, surface, _ := newController(t, source)
	c.start()
	c.reset(entity.ResetFinished)

	require.Len(t, surface.resets, 1)
	assert.Equal(t, home, surface.resets[0])
}

func TestSessionController_SurfaceErrorDoesNotStopReset(t *testing.T) {
	source := portmocks.NewMockBookmarkSource(t)
	source.EXPECT().Bookmarks(mock.Anything).Return(nil, nil)

	c, surface, restarts := newController(t, source)
	surface.err = errors.New("no session")
	c.start()
	c.reset(entity.ResetFinished)

	assert.Equal(t, 2, c.current.Sequence)
	assert.Equal(t, 1, *restarts)
}

type recordingLogSink struct {
	started []string
	err     error
}

func (s *recordingLogSink) StartSession(id string) error {
	s.started = append(s.started, id)
	return s.err
}

func TestSessionController_StartsLogPerSession(t *testing.T) {
	source := portmocks.NewMockBookmarkSource(t)
	source.EXPECT().Bookmarks(mock.Anything).Return(nil, nil)

	c, _, _ := newController(t, source)
	sink := &recordingLogSink{}
	c.logs = sink

	c.start()
	first := c.current.ID
	c.reset(entity.ResetInactivity)

	require.Len(t, sink.started, 2)
	assert.Equal(t, string(first), sink.started[0])
	assert.Equal(t, string(c.current.ID), sink.started[1])
}

func TestSessionController_LogSinkErrorDoesNotStopReset(t *testing.T) {
	source := portmocks.NewMockBookmarkSource(t)
	source.EXPECT().Bookmarks(mock.Anything).Return(nil, nil)

	c, surface, _ := newController(t, source)
	c.logs = &recordingLogSink{err: errors.New("disk full")}

	c.start()
	c.reset(entity.ResetFinished)

	assert.Len(t, surface.resets, 1)
	assert.Equal(t, 2, c.current.Sequence)
}
