package solve

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/orbvault/internal/model/about"
	"github.com/vinser/orbvault/internal/render"
	"github.com/vinser/orbvault/internal/report"
	"github.com/vinser/orbvault/internal/search"
	"github.com/vinser/orbvault/internal/style"
)

type status uint

const (
	statusSearching status = iota
	statusSolved
	statusFailed
)

// Model shows the search deepening one depth at a time and then the route.
type Model struct {
	status    status
	driver    *search.Driver
	spinner   spinner.Model
	depths    []depthLine
	result    search.Result
	err       error
	trace     bool
	showAbout bool
	about     about.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

type depthLine struct {
	depth    int
	frontier int
}

// DepthDoneMsg reports the outcome of evaluating one depth.
type DepthDoneMsg struct {
	Depth    int
	Frontier int
	Found    bool
	Result   search.Result
	Err      error
}

// deepenCmd evaluates the next depth off the update loop. Only one is ever
// in flight, so the driver is never used concurrently.
func deepenCmd(d *search.Driver) tea.Cmd {
	return func() tea.Msg {
		res, found, err := d.Deepen()
		msg := DepthDoneMsg{Depth: d.Depth(), Found: found, Result: res, Err: err}
		if sizes := d.Stats().FrontierSizes; len(sizes) > 0 {
			msg.Frontier = sizes[len(sizes)-1]
		}
		return msg
	}
}

func New(driver *search.Driver, trace bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = style.Spinner
	return Model{
		status:  statusSearching,
		driver:  driver,
		spinner: sp,
		trace:   trace,
		about:   about.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, deepenCmd(m.driver))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		if m.showAbout {
			var cmd tea.Cmd
			m.about, cmd = m.about.Update(msg)
			return m, cmd
		}
		if msg.String() == "?" {
			m.showAbout = true
		}
		return m, nil
	case about.CloseAboutMsg:
		m.showAbout = false
		return m, nil
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.about.SetSize(msg.Width, msg.Height)
		return m, tea.ClearScreen
	case DepthDoneMsg:
		if msg.Err != nil {
			m.status = statusFailed
			m.err = msg.Err
			return m, nil
		}
		m.depths = append(m.depths, depthLine{depth: msg.Depth, frontier: msg.Frontier})
		if msg.Found {
			m.status = statusSolved
			m.result = msg.Result
			return m, nil
		}
		return m, deepenCmd(m.driver)
	case spinner.TickMsg:
		if m.status != statusSearching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Err returns the search failure, if any, once the view has finished.
func (m Model) Err() error {
	return m.err
}

// Result returns the solved route and whether the search succeeded.
func (m Model) Result() (search.Result, bool) {
	return m.result, m.status == statusSolved
}

const footer = "? about, q quit"

func (m Model) View() string {
	if m.showAbout {
		return m.about.View()
	}
	return render.Page("Orb Vault", m.body(), footer, m.termWidth, m.termHeight)
}

func (m Model) body() string {
	var b strings.Builder
	for _, d := range m.depths {
		b.WriteString(style.Progress.Render(fmt.Sprintf("Trying length %d paths. %d candidates", d.depth, d.frontier)))
		b.WriteString("\n")
	}

	switch m.status {
	case statusSearching:
		b.WriteString(fmt.Sprintf("%s searching length %d", m.spinner.View(), len(m.depths)+1))
	case statusFailed:
		b.WriteString(style.Failure.Render(m.err.Error()))
	case statusSolved:
		b.WriteString("\n")
		b.WriteString(style.Success.Render(report.Header))
		b.WriteString("\n")
		moves := make([]string, 0, 2*len(m.result.Path))
		for _, d := range m.result.Path.Directions() {
			moves = append(moves, d.String())
		}
		b.WriteString(strings.Join(moves, " "))
		b.WriteString("\n\n")
		if m.trace {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
				report.Map(m.result.Path), "  ", strings.Join(report.TraceLines(m.result.Path), "\n")))
		} else {
			b.WriteString(report.Map(m.result.Path))
		}
	}
	return b.String()
}
