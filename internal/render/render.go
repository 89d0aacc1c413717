package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/orbvault/internal/style"
)

// Page stacks a slash banner, the title, the already styled body and the
// footer. The banner is as wide as the widest of the other parts. When the
// terminal size is known the page is centered in it.
func Page(title, body, footer string, termWidth, termHeight int) string {
	renderedTitle := style.Title.Render(title)
	renderedFooter := style.Footer.Render(footer)

	width := max(lipgloss.Width(renderedTitle), lipgloss.Width(body), lipgloss.Width(renderedFooter))
	banner := style.TopPattern.Render(strings.Repeat("/", width))

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		banner,
		renderedTitle,
		"",
		body,
		"",
		renderedFooter,
	)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
