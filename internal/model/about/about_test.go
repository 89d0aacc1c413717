package about

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out := Render(60, "notty")
	assert.Contains(t, out, "The Orb Vault")
	assert.Contains(t, out, "exactly")
}

func TestEscClosesPage(t *testing.T) {
	m := New()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, CloseAboutMsg{}, cmd())
}

func TestSetSizeShrinksViewport(t *testing.T) {
	m := New()
	m.SetSize(80, 10)
	assert.Equal(t, 5, m.viewport.Height)
	m.SetSize(80, 60)
	assert.Equal(t, defaultHeight, m.viewport.Height)
	assert.Contains(t, m.View(), "About the vault")
}
