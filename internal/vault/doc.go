// Package vault holds the fixed layout of the orb vault: a 4x4 floor whose
// odd-parity tiles carry arithmetic operators and whose even-parity tiles carry
// numbers. The orb is picked up at (0,0) and must reach the door at (3,3).
package vault
