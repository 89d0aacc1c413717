package vault

import "fmt"

// Position represents coordinates on the vault floor.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction represents movement direction.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in declaration order. Search enumeration
// relies on this order.
var Directions = [...]Direction{North, East, South, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Short returns the one-letter form of the direction.
func (d Direction) Short() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// Move returns the position one tile away in direction d. No bounds checking.
func Move(d Direction, p Position) Position {
	switch d {
	case North:
		p.Y++
	case East:
		p.X++
	case South:
		p.Y--
	case West:
		p.X--
	}
	return p
}

// IsValidPosition reports whether p lies on the vault floor and is not the
// antechamber tile, which can never be re-entered.
func IsValidPosition(p Position) bool {
	if p.X < 0 || p.X >= Size || p.Y < 0 || p.Y >= Size {
		return false
	}
	return p != Origin
}
