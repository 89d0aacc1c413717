package vault

import "fmt"

const (
	// Size is the width and height of the vault floor.
	Size = 4
	// StartOrb is the orb weight on the antechamber pedestal.
	StartOrb int64 = 22
	// GoalOrb is the weight the orb must have at the vault door.
	GoalOrb int64 = 3
)

var (
	// Origin is the antechamber tile where the orb is picked up.
	Origin = Position{X: 0, Y: 0}
	// Door is the tile in front of the vault door.
	Door = Position{X: 3, Y: 3}
)

// Operator is a binary arithmetic operation engraved on a floor tile.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
)

// Apply evaluates a op b.
func (op Operator) Apply(a, b int64) int64 {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	}
	panic(fmt.Sprintf("vault: unknown operator %d", int(op)))
}

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	}
	return "?"
}

var operators = map[Position]Operator{
	{X: 1, Y: 0}: Sub,
	{X: 3, Y: 0}: Mul,
	{X: 0, Y: 1}: Add,
	{X: 2, Y: 1}: Sub,
	{X: 1, Y: 2}: Mul,
	{X: 3, Y: 2}: Mul,
	{X: 0, Y: 3}: Mul,
	{X: 2, Y: 3}: Sub,
}

var values = map[Position]int64{
	{X: 0, Y: 0}: 22,
	{X: 2, Y: 0}: 9,
	{X: 1, Y: 1}: 4,
	{X: 3, Y: 1}: 18,
	{X: 0, Y: 2}: 4,
	{X: 2, Y: 2}: 11,
	{X: 1, Y: 3}: 8,
	{X: 3, Y: 3}: 1,
}

// ContractError is the panic value raised when a tile lookup is made outside
// its table. It always means the caller skipped position validation.
type ContractError struct {
	Lookup string
	Pos    Position
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("vault: %s lookup at %v: no such tile", e.Lookup, e.Pos)
}

// OperatorAt returns the operator on an odd-parity tile. It panics with a
// *ContractError for any other position.
func OperatorAt(p Position) Operator {
	op, ok := operators[p]
	if !ok {
		panic(&ContractError{Lookup: "operator", Pos: p})
	}
	return op
}

// ValueAt returns the number on an even-parity tile. It panics with a
// *ContractError for any other position.
func ValueAt(p Position) int64 {
	v, ok := values[p]
	if !ok {
		panic(&ContractError{Lookup: "value", Pos: p})
	}
	return v
}

// IsOperatorTile reports whether p holds an operator, judged by parity alone.
func IsOperatorTile(p Position) bool {
	return (p.X+p.Y)%2 != 0
}

// Label returns the printable content of a floor tile: the operator symbol or
// the number. Off-floor positions return an empty string.
func Label(p Position) string {
	if op, ok := operators[p]; ok {
		return op.String()
	}
	if v, ok := values[p]; ok {
		return fmt.Sprintf("%d", v)
	}
	return ""
}
