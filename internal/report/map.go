package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/orbvault/internal/search"
	"github.com/vinser/orbvault/internal/style"
	"github.com/vinser/orbvault/internal/vault"
)

// Visits returns, per tile, the 1-based move numbers at which p enters it.
// The antechamber is visit 0.
func Visits(p search.Path) map[vault.Position][]int {
	visits := map[vault.Position][]int{vault.Origin: {0}}
	pos := vault.Origin
	for i, d := range p.Directions() {
		pos = vault.Move(d, pos)
		visits[pos] = append(visits[pos], i+1)
	}
	return visits
}

// Map draws the vault floor with north at the top. Each tile shows its
// operator or number and, below it, the move numbers at which p steps on it.
func Map(p search.Path) string {
	visits := Visits(p)
	rows := make([]string, 0, vault.Size)
	for y := vault.Size - 1; y >= 0; y-- {
		cells := make([]string, 0, vault.Size)
		for x := 0; x < vault.Size; x++ {
			pos := vault.Position{X: x, Y: y}
			cells = append(cells, tileStyle(pos).Render(vault.Label(pos)+"\n"+marks(visits[pos])))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func tileStyle(p vault.Position) lipgloss.Style {
	switch {
	case p == vault.Origin:
		return style.OriginTile
	case p == vault.Door:
		return style.DoorTile
	case vault.IsOperatorTile(p):
		return style.OperatorTile
	default:
		return style.NumberTile
	}
}

func marks(moves []int) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = fmt.Sprint(m)
	}
	return style.RouteMark.Render(strings.Join(parts, ","))
}
