package entity

import "math"

// Zoom constants
const (
	ZoomDefault = 1.0
	ZoomMin     = 0.1
	ZoomMax     = 3.0
	ZoomStep    = 0.1 // 10% increments

	zoomEpsilon = 1e-9
)

// ZoomState is the zoom factor of the browsing surface together with the
// availability of the zoom buttons.
type ZoomState struct {
	Factor float64
}

// NewZoomState creates a zoom state without clamping. Config values are
// validated by the config loader, not here.
func NewZoomState(factor float64) ZoomState {
	return ZoomState{Factor: factor}
}

// ZoomIn increases the factor by one step, stopping at ZoomMax.
func (z ZoomState) ZoomIn() ZoomState {
	return ZoomState{Factor: ClampZoom(roundZoom(z.Factor + ZoomStep))}
}

// ZoomOut decreases the factor by one step, stopping at ZoomMin.
func (z ZoomState) ZoomOut() ZoomState {
	return ZoomState{Factor: ClampZoom(roundZoom(z.Factor - ZoomStep))}
}

// CanZoomIn is false exactly at the upper boundary.
func (z ZoomState) CanZoomIn() bool {
	return z.Factor < ZoomMax-zoomEpsilon
}

// CanZoomOut is false exactly at the lower boundary.
func (z ZoomState) CanZoomOut() bool {
	return z.Factor > ZoomMin+zoomEpsilon
}

// Percentage returns the zoom factor as a percentage (e.g., 150 for 1.5).
func (z ZoomState) Percentage() int {
	return int(math.Round(z.Factor * 100))
}

// ClampZoom constrains a zoom factor to the valid range.
func ClampZoom(factor float64) float64 {
	if factor < ZoomMin {
		return ZoomMin
	}
	if factor > ZoomMax {
		return ZoomMax
	}
	return factor
}

// roundZoom removes accumulated float error so repeated steps land on
// exact tenths.
func roundZoom(factor float64) float64 {
	return math.Round(factor*1000) / 1000
}
