package search

import (
	"fmt"
	"strings"

	"github.com/vinser/orbvault/internal/vault"
)

// State is a snapshot of the orb: where it is and what it weighs.
type State struct {
	Pos vault.Position
	Orb int64
}

func (s State) String() string {
	return fmt.Sprintf("%v orb=%d", s.Pos, s.Orb)
}

var (
	// Initial is the state right after picking the orb up.
	Initial = State{Pos: vault.Origin, Orb: vault.StartOrb}
	// Goal is the only state that opens the vault door.
	Goal = State{Pos: vault.Door, Orb: vault.GoalOrb}
)

// IsGoal reports whether s is exactly the goal state.
func IsGoal(s State) bool {
	return s == Goal
}

// IsStateValid reports whether s sits on a reachable tile with a positive orb.
// The search never prunes on it; it is kept for diagnostics.
func IsStateValid(s State) bool {
	return s.Orb > 0 && vault.IsValidPosition(s.Pos)
}

// Step is a paired move: First lands on an operator tile, Second on a number.
type Step struct {
	First, Second vault.Direction
}

func (s Step) String() string {
	return s.First.Short() + s.Second.Short()
}

// Path is a sequence of steps stored oldest first.
type Path []Step

// Extend returns a copy of p with step appended. p itself is not modified.
func (p Path) Extend(step Step) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, step)
}

// Newest returns the most recently taken step.
func (p Path) Newest() (Step, bool) {
	if len(p) == 0 {
		return Step{}, false
	}
	return p[len(p)-1], true
}

// Reverse returns the steps newest first.
func (p Path) Reverse() Path {
	r := make(Path, len(p))
	for i, s := range p {
		r[len(p)-1-i] = s
	}
	return r
}

// Directions flattens p into single-tile moves in the order they are walked.
func (p Path) Directions() []vault.Direction {
	dirs := make([]vault.Direction, 0, 2*len(p))
	for _, s := range p {
		dirs = append(dirs, s.First, s.Second)
	}
	return dirs
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ApplyStep walks one step from s. Both landing tiles must already be known to
// be valid; the tile lookups panic otherwise.
func ApplyStep(s State, step Step) State {
	p1 := vault.Move(step.First, s.Pos)
	op := vault.OperatorAt(p1)
	p2 := vault.Move(step.Second, p1)
	return State{Pos: p2, Orb: op.Apply(s.Orb, vault.ValueAt(p2))}
}

// ComputeState walks the whole path from the initial state.
func ComputeState(p Path) State {
	s := Initial
	for _, step := range p {
		s = ApplyStep(s, step)
	}
	return s
}
