package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Solve view
	Title    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Progress = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	Success  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green
	Failure  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // Bright red
	Spinner  = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))           // Pinkish-reddish purple
	Content  = lipgloss.NewStyle()
	Footer   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))

	// Vault map tiles
	Tile = lipgloss.NewStyle().Width(7).Align(lipgloss.Center).
		Border(lipgloss.NormalBorder(), false, true, true, false)
	OperatorTile = Tile.Foreground(hex("cyan"))
	NumberTile   = Tile.Foreground(hex("white"))
	OriginTile   = Tile.Foreground(hex("red"))
	DoorTile     = Tile.Foreground(hex("green"))
	RouteMark    = lipgloss.NewStyle().Bold(true).Foreground(hex("yellow"))
)

type RGB struct {
	R int
	G int
	B int
}

var RGBColor = map[string]RGB{
	"black":   {0, 0, 0},
	"red":     {255, 0, 0},
	"green":   {0, 255, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"magenta": {255, 0, 255},
	"cyan":    {0, 255, 255},
	"white":   {255, 255, 255},
	"grey":    {128, 128, 128},
}

// GenerateHexColor generates hexadecimal string for the given RGB values. r, g, b should be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func hex(name string) lipgloss.Color {
	c := RGBColor[name]
	return lipgloss.Color(GenerateHexColor(c.R, c.G, c.B))
}
