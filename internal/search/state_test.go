package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/orbvault/internal/vault"
)

func TestComputeStateEmptyPath(t *testing.T) {
	assert.Equal(t, State{Pos: vault.Position{X: 0, Y: 0}, Orb: 22}, ComputeState(Path{}))
	assert.Equal(t, Initial, ComputeState(nil))
}

func TestApplyStep(t *testing.T) {
	tests := []struct {
		name string
		from State
		step Step
		want State
	}{
		{
			name: "north then east adds four",
			from: Initial,
			step: Step{First: vault.North, Second: vault.East},
			want: State{Pos: vault.Position{X: 1, Y: 1}, Orb: 26},
		},
		{
			name: "east then north subtracts four",
			from: Initial,
			step: Step{First: vault.East, Second: vault.North},
			want: State{Pos: vault.Position{X: 1, Y: 1}, Orb: 18},
		},
		{
			name: "multiply into the door",
			from: State{Pos: vault.Position{X: 2, Y: 2}, Orb: 3},
			step: Step{First: vault.East, Second: vault.North},
			want: State{Pos: vault.Door, Orb: 3},
		},
		{
			name: "orb may go negative",
			from: State{Pos: vault.Position{X: 1, Y: 1}, Orb: 4},
			step: Step{First: vault.East, Second: vault.North},
			want: State{Pos: vault.Position{X: 2, Y: 2}, Orb: -7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyStep(tt.from, tt.step))
		})
	}
}

func TestApplyStepOffTablePanics(t *testing.T) {
	// West from the origin leaves the floor; the lookup must not invent a tile.
	require.Panics(t, func() {
		ApplyStep(Initial, Step{First: vault.West, Second: vault.North})
	})
}

func TestComputeStateChronological(t *testing.T) {
	p := Path{
		{First: vault.East, Second: vault.North},
		{First: vault.South, Second: vault.North},
	}
	assert.Equal(t, State{Pos: vault.Position{X: 1, Y: 1}, Orb: 14}, ComputeState(p))
}

func TestIsGoal(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{"exact goal", State{Pos: vault.Position{X: 3, Y: 3}, Orb: 3}, true},
		{"door with wrong orb", State{Pos: vault.Position{X: 3, Y: 3}, Orb: 5}, false},
		{"right orb next to door", State{Pos: vault.Position{X: 2, Y: 3}, Orb: 3}, false},
		{"initial", Initial, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGoal(tt.state))
		})
	}
}

func TestIsStateValid(t *testing.T) {
	assert.True(t, IsStateValid(Goal))
	assert.False(t, IsStateValid(Initial), "origin is not a valid tile")
	assert.False(t, IsStateValid(State{Pos: vault.Position{X: 2, Y: 2}, Orb: 0}))
	assert.False(t, IsStateValid(State{Pos: vault.Position{X: 2, Y: 2}, Orb: -7}))
}

func TestPathHelpers(t *testing.T) {
	base := Path{{First: vault.North, Second: vault.East}}
	ext := base.Extend(Step{First: vault.East, Second: vault.South})

	require.Len(t, base, 1, "Extend must not modify the receiver")
	require.Len(t, ext, 2)

	newest, ok := ext.Newest()
	require.True(t, ok)
	assert.Equal(t, Step{First: vault.East, Second: vault.South}, newest)

	_, ok = Path{}.Newest()
	assert.False(t, ok)

	want := Path{{First: vault.East, Second: vault.South}, {First: vault.North, Second: vault.East}}
	if diff := cmp.Diff(want, ext.Reverse()); diff != "" {
		t.Errorf("Reverse() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []vault.Direction{vault.North, vault.East, vault.East, vault.South}, ext.Directions())
	assert.Equal(t, "[NE ES]", ext.String())
}

func TestExtendDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = Step{First: vault.North, Second: vault.North}
	a := base.Extend(Step{First: vault.East, Second: vault.East})
	b := base.Extend(Step{First: vault.West, Second: vault.West})
	assert.Equal(t, vault.East, a[1].First)
	assert.Equal(t, vault.West, b[1].First)
}
