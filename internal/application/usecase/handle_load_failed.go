package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// LoadFailure describes a page load that did not complete.
type LoadFailure struct {
	FailingURI string
	Reason     string
	// Cancelled is set when the load was stopped by the user or superseded
	// by another navigation. Such loads are not failures.
	Cancelled bool
}

// HandleLoadFailedUseCase swaps a failed page for a kiosk-friendly page.
type HandleLoadFailedUseCase struct {
	startURL string
	pages    port.ErrorPageRenderer
}

// NewHandleLoadFailedUseCase creates the use case for the given start page.
func NewHandleLoadFailedUseCase(startURL string, pages port.ErrorPageRenderer) *HandleLoadFailedUseCase {
	return &HandleLoadFailedUseCase{startURL: startURL, pages: pages}
}

// Execute classifies the failure and, when needed, loads the substitute page.
// It returns the outcome that was applied.
func (uc *HandleLoadFailedUseCase) Execute(
	ctx context.Context,
	webview port.WebView,
	failure LoadFailure,
) (entity.LoadOutcome, error) {
	log := logging.FromContext(ctx)

	if failure.Cancelled {
		log.Debug().Str("uri", failure.FailingURI).Msg("load cancelled, keeping page")
		return entity.LoadSucceeded, nil
	}

	outcome := entity.ClassifyLoad(false, failure.FailingURI, uc.startURL)

	html, err := uc.pages.Render(outcome, uc.startURL)
	if err != nil {
		return outcome, fmt.Errorf("failed to render %s page: %w", outcome, err)
	}

	if err := webview.LoadAlternateHTML(ctx, html, failure.FailingURI); err != nil {
		return outcome, fmt.Errorf("failed to show %s page: %w", outcome, err)
	}

	log.Info().
		Str("uri", failure.FailingURI).
		Str("reason", failure.Reason).
		Str("outcome", outcome.String()).
		Msg("load failed, substitute page shown")

	return outcome, nil
}
