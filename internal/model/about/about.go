package about

import (
	"log"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/orbvault/internal/embeddata"
	"github.com/vinser/orbvault/internal/render"
)

const (
	defaultWidth  = 72
	defaultHeight = 20
	// rows taken by the page banner, title, spacing and footer
	pageChrome = 5
)

type Model struct {
	termWidth  int
	termHeight int

	viewport viewport.Model
}

type CloseAboutMsg struct{}

func closeAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseAboutMsg{}
	}
}

func New() Model {
	vp := viewport.New(defaultWidth, defaultHeight)
	vp.Style = lipgloss.NewStyle()
	vp.SetContent(Render(defaultWidth, "pink"))
	return Model{viewport: vp}
}

// Render returns about.md rendered for a terminal of the given width. An
// empty style name picks one from the terminal background, which yields
// plain text when the output is not a terminal.
func Render(width int, styleName string) string {
	bytes, err := embeddata.ReadAboutMD()
	if err != nil {
		log.Fatal(err)
	}
	const glamourGutter = 2
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width - glamourGutter)}
	if styleName == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(styleName))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return string(bytes) //noop
	}
	str, err := r.Render(string(bytes))
	if err != nil {
		return string(bytes) //noop
	}
	return str
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	if height-pageChrome < defaultHeight {
		m.viewport.Height = max(height-pageChrome, 1)
	} else {
		m.viewport.Height = defaultHeight
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?":
			return m, closeAboutCmd()
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

const footer = "↑ ↓ scroll, esc back, q quit"

func (m Model) View() string {
	return render.Page("About the vault", m.viewport.View(), footer, m.termWidth, m.termHeight)
}
