package search

import "github.com/vinser/orbvault/internal/vault"

// Entry is a candidate path together with the tile it ends on.
type Entry struct {
	Path Path
	Pos  vault.Position
}

// Frontier holds every candidate path of one length, in enumeration order.
type Frontier []Entry

// Seed returns the depth-zero frontier: the empty path at the origin.
func Seed() Frontier {
	return Frontier{{Path: Path{}, Pos: vault.Origin}}
}

// ExtendAll grows every entry by one step in all position-valid ways.
//
// Enumeration order decides which of several equally short solutions is
// found first: entries keep their frontier order, the second direction of the
// new step is the outer loop and the first direction the inner loop, both in
// vault.Directions order. Entries reaching the same tile through different
// histories are all kept.
func ExtendAll(f Frontier) Frontier {
	next := make(Frontier, 0, len(f)*len(vault.Directions)*len(vault.Directions))
	for _, e := range f {
		for _, d2 := range vault.Directions {
			for _, d1 := range vault.Directions {
				p1 := vault.Move(d1, e.Pos)
				if !vault.IsValidPosition(p1) {
					continue
				}
				p2 := vault.Move(d2, p1)
				if !vault.IsValidPosition(p2) {
					continue
				}
				next = append(next, Entry{
					Path: e.Path.Extend(Step{First: d1, Second: d2}),
					Pos:  p2,
				})
			}
		}
	}
	return next
}

// PathsOfLength returns all position-valid paths of exactly n steps.
func PathsOfLength(n int) Frontier {
	f := Seed()
	for i := 0; i < n; i++ {
		f = ExtendAll(f)
	}
	return f
}
