// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// ManageZoomUseCase steps the zoom of a web view within [ZoomMin, ZoomMax].
type ManageZoomUseCase struct {
	initialZoom float64
}

// NewManageZoomUseCase creates a new zoom management use case.
// initialZoom comes from config and is applied to every fresh view.
func NewManageZoomUseCase(initialZoom float64) *ManageZoomUseCase {
	if initialZoom <= 0 {
		initialZoom = entity.ZoomDefault
	}
	return &ManageZoomUseCase{initialZoom: initialZoom}
}

// InitialZoom returns the configured starting zoom.
func (uc *ManageZoomUseCase) InitialZoom() float64 {
	return uc.initialZoom
}

// Apply sets the configured zoom on a freshly built view.
func (uc *ManageZoomUseCase) Apply(ctx context.Context, webview port.WebView) (entity.ZoomState, error) {
	state := entity.NewZoomState(uc.initialZoom)
	if err := webview.SetZoomLevel(ctx, state.Factor); err != nil {
		return uc.Current(webview), fmt.Errorf("failed to apply initial zoom: %w", err)
	}
	return state, nil
}

// Current reads the zoom state back from the view.
func (*ManageZoomUseCase) Current(webview port.WebView) entity.ZoomState {
	return entity.NewZoomState(webview.GetZoomLevel())
}

// ZoomIn increases the zoom level by one step (0.1).
func (uc *ManageZoomUseCase) ZoomIn(ctx context.Context, webview port.WebView) (entity.ZoomState, error) {
	return uc.step(ctx, webview, "in", entity.ZoomState.ZoomIn)
}

// ZoomOut decreases the zoom level by one step (0.1).
func (uc *ManageZoomUseCase) ZoomOut(ctx context.Context, webview port.WebView) (entity.ZoomState, error) {
	return uc.step(ctx, webview, "out", entity.ZoomState.ZoomOut)
}

func (uc *ManageZoomUseCase) step(
	ctx context.Context,
	webview port.WebView,
	direction string,
	next func(entity.ZoomState) entity.ZoomState,
) (entity.ZoomState, error) {
	log := logging.FromContext(ctx)

	current := uc.Current(webview)
	target := next(current)
	if target.Factor == current.Factor {
		log.Debug().Str("direction", direction).Float64("zoom", current.Factor).Msg("zoom at boundary")
		return current, nil
	}

	if err := webview.SetZoomLevel(ctx, target.Factor); err != nil {
		return current, fmt.Errorf("failed to zoom %s: %w", direction, err)
	}

	log.Debug().
		Str("direction", direction).
		Float64("from", current.Factor).
		Float64("to", target.Factor).
		Msg("zoom changed")

	return target, nil
}
