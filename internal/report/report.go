// Package report turns a solved path into text: the direction list typed into
// the game, an arithmetic trace and a map of the vault floor.
package report

import (
	"fmt"
	"io"

	"github.com/vinser/orbvault/internal/search"
	"github.com/vinser/orbvault/internal/vault"
)

// Header precedes the direction list.
const Header = "Solution found:"

// Progress writes the line announcing a new search depth.
func Progress(w io.Writer, depth int) error {
	_, err := fmt.Fprintf(w, "Trying length %d paths.\n", depth)
	return err
}

// Solution writes the header and then every single-tile move of p, one per
// line, from the antechamber to the door.
func Solution(w io.Writer, p search.Path) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	for _, d := range p.Directions() {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}
	return nil
}

// TraceLines explains how the orb weight changes along p.
func TraceLines(p search.Path) []string {
	lines := make([]string, 0, len(p))
	s := search.Initial
	for i, step := range p {
		op := vault.OperatorAt(vault.Move(step.First, s.Pos))
		next := search.ApplyStep(s, step)
		lines = append(lines, fmt.Sprintf("%d. %s %s: %d %s %d = %d at %v",
			i+1, step.First, step.Second, s.Orb, op, vault.ValueAt(next.Pos), next.Orb, next.Pos))
		s = next
	}
	return lines
}

// Trace writes TraceLines to w.
func Trace(w io.Writer, p search.Path) error {
	for _, l := range TraceLines(p) {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
