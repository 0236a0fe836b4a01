package styles

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModel_DefaultsToNo(t *testing.T) {
	m := NewConfirm(NewTheme(), "Overwrite?")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Done())
	assert.False(t, m.Result())
}

func TestConfirmModel_YesThenEnter(t *testing.T) {
	m := NewConfirm(NewTheme(), "Overwrite?")
	m, _ = m.Update(keyRunes("y"))
	assert.False(t, m.Done())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Result())
}

func TestConfirmProgram_QuitsWhenDone(t *testing.T) {
	p := confirmProgram{NewConfirm(NewTheme(), "Overwrite?")}

	next, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.True(t, next.(confirmProgram).Canceled)
	assert.False(t, next.(confirmProgram).Result())
}

func TestConfirmProgram_CtrlCCancels(t *testing.T) {
	p := confirmProgram{NewConfirm(NewTheme(), "Overwrite?")}
	p.Yes = true

	next, cmd := p.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
	assert.False(t, next.(confirmProgram).Result())
}
