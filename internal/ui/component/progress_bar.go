package component

import (
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

const (
	// progressStep is how far one animation frame moves the bar.
	progressStep = 0.02
	// progressIntervalMs is the animation frame interval (~60fps).
	progressIntervalMs = 16
	// progressJump is the gap above which the bar moves without animating.
	progressJump = 0.3
)

// progressModel animates a displayed value towards a target.
type progressModel struct {
	current float64
	target  float64
}

// set moves the target and reports whether the displayed value jumped
// straight to it.
func (m *progressModel) set(progress float64) bool {
	progress = max(0, min(1, progress))
	m.target = progress
	if progress < m.current || progress-m.current > progressJump || progress >= 1 {
		m.current = progress
		return true
	}
	return false
}

// step advances one frame and reports whether more frames are needed.
func (m *progressModel) step() bool {
	if m.current >= m.target {
		return false
	}
	m.current = min(m.current+progressStep, m.target)
	return m.current < m.target
}

func (m *progressModel) reset() {
	m.current = 0
	m.target = 0
}

// ProgressBar is a slim load indicator drawn over the bottom of the page.
// All methods run on the GTK thread.
type ProgressBar struct {
	bar   *gtk.ProgressBar
	model progressModel
	timer glib.SourceHandle
}

// NewProgressBar creates a hidden progress bar ready for an overlay.
func NewProgressBar() *ProgressBar {
	bar := gtk.NewProgressBar()
	bar.AddCSSClass("osd")
	bar.SetVAlign(gtk.AlignEnd)
	bar.SetHAlign(gtk.AlignFill)
	bar.SetHExpand(true)
	// Clicks pass through to the page.
	bar.SetCanTarget(false)
	bar.SetCanFocus(false)
	bar.SetVisible(false)

	return &ProgressBar{bar: bar}
}

// SetProgress shows the bar at progress, in [0, 1]. Completion hides it.
func (pb *ProgressBar) SetProgress(progress float64) {
	if progress >= 1 {
		pb.Hide()
		return
	}
	pb.bar.SetVisible(true)

	if pb.model.set(progress) {
		pb.stopAnimation()
		pb.bar.SetFraction(pb.model.current)
		return
	}
	if pb.timer == 0 {
		pb.timer = glib.TimeoutAdd(progressIntervalMs, func() bool {
			more := pb.model.step()
			pb.bar.SetFraction(pb.model.current)
			if !more {
				pb.timer = 0
			}
			return more
		})
	}
}

// Hide hides the bar and resets it to zero.
func (pb *ProgressBar) Hide() {
	pb.stopAnimation()
	pb.model.reset()
	pb.bar.SetFraction(0)
	pb.bar.SetVisible(false)
}

func (pb *ProgressBar) stopAnimation() {
	if pb.timer != 0 {
		glib.SourceRemove(pb.timer)
		pb.timer = 0
	}
}

// Widget returns the bar for embedding in an overlay.
func (pb *ProgressBar) Widget() gtk.Widgetter {
	return pb.bar
}
