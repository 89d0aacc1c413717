// Package search finds the shortest walk that carries the orb from the
// antechamber to the vault door with the right weight.
//
// The search is exhaustive and iterative-deepening: at depth n every
// position-valid path of n steps is materialized, each one is walked end to
// end, and the first path in enumeration order that ends in the goal state
// wins. Paths are never pruned on orb value and never deduplicated.
package search
