package styles

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/domain/entity"
)

// SessionsCLIRenderer renders output for `kiosk sessions`.
type SessionsCLIRenderer struct {
	theme *Theme
}

func NewSessionsCLIRenderer(theme *Theme) *SessionsCLIRenderer {
	return &SessionsCLIRenderer{theme: theme}
}

func (r *SessionsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No sessions recorded.")
}

// RenderList prints one line per session, newest first, followed by a
// per-reason count.
func (r *SessionsCLIRenderer) RenderList(summary *usecase.SessionSummary, limit int) string {
	if summary == nil || len(summary.Sessions) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconSessionStack), r.theme.Title.Render("Sessions"))
	b.WriteString(title)
	if limit > 0 {
		b.WriteString(r.theme.Subtle.Render(fmt.Sprintf(" (showing up to %d)", limit)))
	}
	b.WriteString("\n\n")

	for _, s := range summary.Sessions {
		b.WriteString(r.renderOne(s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.renderReasons(summary.ByReason))
	return b.String()
}

func (r *SessionsCLIRenderer) renderOne(s *entity.Session) string {
	status := r.theme.Subtle.Render(IconStop)
	duration := r.theme.Subtle.Render(FormatDuration(s.Duration()))
	if s.IsActive() {
		status = r.theme.Highlight.Render(IconPlay)
		duration = r.theme.Highlight.Render("running")
	}

	return fmt.Sprintf("%s %s  %s  %s  %s",
		status,
		r.theme.Normal.Render(fmt.Sprintf("#%-4d", s.Sequence)),
		r.theme.Subtle.Render(s.StartedAt.Local().Format("2006-01-02 15:04:05")),
		r.theme.BadgeMuted.Render(string(s.Reason)),
		duration,
	)
}

func (r *SessionsCLIRenderer) renderReasons(byReason map[entity.ResetReason]int) string {
	reasons := make([]string, 0, len(byReason))
	for reason := range byReason {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)

	parts := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		parts = append(parts, fmt.Sprintf("%s %d", reason, byReason[entity.ResetReason(reason)]))
	}
	return r.theme.Subtle.Render(strings.Join(parts, " · "))
}

func (r *SessionsCLIRenderer) RenderPurged(n int64) string {
	return fmt.Sprintf("%s Removed %s ended session(s).",
		r.theme.SuccessStyle.Render(IconTrash),
		r.theme.Highlight.Render(fmt.Sprintf("%d", n)),
	)
}

func (r *SessionsCLIRenderer) RenderLogsRemoved(n int) string {
	return fmt.Sprintf("%s Removed %s archived session log(s).",
		r.theme.SuccessStyle.Render(IconTrash),
		r.theme.Highlight.Render(fmt.Sprintf("%d", n)),
	)
}

func (r *SessionsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

// FormatDuration renders d rounded to the second, e.g. "4m12s".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	return d.Round(time.Second).String()
}
