package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmYesKeys    = key.NewBinding(key.WithKeys("y", "right", "l"))
	confirmNoKeys     = key.NewBinding(key.WithKeys("n", "left", "h"))
	confirmSubmitKeys = key.NewBinding(key.WithKeys("enter"))
	confirmCancelKeys = key.NewBinding(key.WithKeys("esc"))
)

const confirmHint = "y/n or ←/→ to select • enter to confirm • esc to cancel"

// ConfirmModel is a yes/no dialog that defaults to "No". The config and
// sessions subcommands use it before overwriting or deleting kiosk data.
type ConfirmModel struct {
	Message   string
	Yes       bool
	Confirmed bool
	Canceled  bool
	theme     *Theme
}

func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{Message: message, theme: theme}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, confirmYesKeys):
		m.Yes = true
	case key.Matches(k, confirmNoKeys):
		m.Yes = false
	case key.Matches(k, confirmSubmitKeys):
		m.Confirmed = true
	case key.Matches(k, confirmCancelKeys):
		m.Canceled = true
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	t := m.theme
	no, yes := t.ActiveButton, t.InactiveButton
	if m.Yes {
		no, yes = yes, no
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, no.Render(" No "), "  ", yes.Render(" Yes "))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center,
		t.Title.Render(m.Message), "", buttons, "", t.Subtle.Render(confirmHint)))
}

// Done reports whether the user submitted or dismissed the dialog.
func (m ConfirmModel) Done() bool {
	return m.Confirmed || m.Canceled
}

// Result is true only when "Yes" was submitted.
func (m ConfirmModel) Result() bool {
	return m.Confirmed && m.Yes
}

// confirmProgram adapts ConfirmModel to a standalone tea.Program.
type confirmProgram struct {
	ConfirmModel
}

func (p confirmProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		p.Canceled = true
		return p, tea.Quit
	}
	m, cmd := p.ConfirmModel.Update(msg)
	p.ConfirmModel = m
	if p.Done() {
		return p, tea.Quit
	}
	return p, cmd
}

// RunConfirm shows the dialog on the terminal and reports whether the user
// chose "Yes".
func RunConfirm(theme *Theme, message string) (bool, error) {
	final, err := tea.NewProgram(confirmProgram{NewConfirm(theme, message)}).Run()
	if err != nil {
		return false, err
	}
	return final.(confirmProgram).Result(), nil
}
