package search

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultMaxDepth is the step ceiling used when none is configured. The vault
// opens at depth 4, so this never cuts the real search short.
const DefaultMaxDepth = 32

// ErrNoSolution is returned when the depth ceiling is reached without any path
// ending in the goal state.
var ErrNoSolution = errors.New("search: no solution found")

// Stats describes the work done by a driver.
type Stats struct {
	Depth         int   // depth of the last evaluated frontier
	FrontierSizes []int // frontier size per depth, index 0 is depth 1
	Evaluated     int   // paths walked end to end
}

// Result is a goal-reaching path and what it took to find it.
type Result struct {
	Path  Path
	State State
	Stats Stats
}

// Driver runs the iterative-deepening search one depth at a time.
type Driver struct {
	// MaxDepth bounds the number of steps tried. Zero means no bound.
	MaxDepth int
	// OnDepth, when set, is called with the depth about to be evaluated.
	OnDepth func(depth int)

	log      logrus.FieldLogger
	depth    int
	frontier Frontier
	stats    Stats
}

// NewDriver returns a driver positioned before depth 1. A nil logger discards
// all log output.
func NewDriver(maxDepth int, log logrus.FieldLogger) *Driver {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Driver{
		MaxDepth: maxDepth,
		log:      log,
		frontier: Seed(),
	}
}

// Depth returns the depth of the last evaluated frontier.
func (d *Driver) Depth() int {
	return d.depth
}

// Stats returns a snapshot of the work done so far.
func (d *Driver) Stats() Stats {
	s := d.stats
	s.FrontierSizes = append([]int(nil), d.stats.FrontierSizes...)
	return s
}

// Deepen evaluates the next depth. It reports found=true with the first
// goal-reaching path in frontier order, found=false when the depth holds no
// solution, or ErrNoSolution once MaxDepth is exhausted.
func (d *Driver) Deepen() (res Result, found bool, err error) {
	if d.MaxDepth > 0 && d.depth >= d.MaxDepth {
		return Result{}, false, fmt.Errorf("%w within %d steps", ErrNoSolution, d.MaxDepth)
	}
	d.depth++
	if d.OnDepth != nil {
		d.OnDepth(d.depth)
	}

	d.frontier = ExtendAll(d.frontier)
	d.stats.Depth = d.depth
	d.stats.FrontierSizes = append(d.stats.FrontierSizes, len(d.frontier))

	log := d.log.WithFields(logrus.Fields{"depth": d.depth, "frontier": len(d.frontier)})
	log.Debug("frontier built")

	for _, e := range d.frontier {
		d.stats.Evaluated++
		s := ComputeState(e.Path)
		if IsGoal(s) {
			log.WithField("path", e.Path.String()).Info("goal reached")
			return Result{Path: e.Path, State: s, Stats: d.Stats()}, true, nil
		}
	}
	log.Debug("no goal at this depth")
	return Result{}, false, nil
}

// Solve deepens until a solution is found or MaxDepth is exhausted.
func (d *Driver) Solve() (Result, error) {
	for {
		res, found, err := d.Deepen()
		if err != nil {
			return Result{}, err
		}
		if found {
			return res, nil
		}
	}
}

// Solve runs a fresh search bounded by maxDepth.
func Solve(maxDepth int, log logrus.FieldLogger) (Result, error) {
	return NewDriver(maxDepth, log).Solve()
}
