package model

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	cellAlive = '*'
	cellDead  = ' '
)

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic PCG source for the given seed
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// Option configures a Simulation
type Option func(*Simulation)

// WithWorkers splits each step into row bands computed concurrently.
// Values below 2 keep the step on the calling goroutine.
func WithWorkers(n int) Option {
	return func(s *Simulation) {
		s.workers = max(1, n)
	}
}

// Simulation advances a double-buffered pair of fields one generation at a time
type Simulation struct {
	width      int
	height     int
	buffers    [2]*Field
	current    int // index into buffers; the other slot is the scratch buffer
	generation int
	workers    int
}

// NewSimulation allocates both buffers and seeds the current one with
// width*height/4 random picks. Picks are drawn with replacement, so the
// initial population may be smaller than that.
func NewSimulation(width, height int, src Source, opts ...Option) (*Simulation, error) {
	if src == nil {
		return nil, errors.New("[NewSimulation] nil random source")
	}

	s := &Simulation{width: width, height: height, workers: 1}
	for i := range s.buffers {
		field, err := NewField(width, height)
		if err != nil {
			return nil, errors.Wrap(err, "[NewSimulation] failed to allocate buffer")
		}
		s.buffers[i] = field
	}
	for _, opt := range opts {
		opt(s)
	}

	seed := s.buffers[s.current]
	for range width * height / 4 {
		x := src.IntN(width)
		y := src.IntN(height)
		seed.Set(x, y, true)
	}

	return s, nil
}

// Width returns the width of the grid
func (s *Simulation) Width() int {
	return s.width
}

// Height returns the height of the grid
func (s *Simulation) Height() int {
	return s.height
}

// Generation returns the number of steps taken so far
func (s *Simulation) Generation() int {
	return s.generation
}

// Current returns the field holding the latest generation
func (s *Simulation) Current() *Field {
	return s.buffers[s.current]
}

// Population returns the number of living cells in the latest generation
func (s *Simulation) Population() int {
	return s.Current().CountLivingCells()
}

// Step advances the game by one generation, recomputing every cell
func (s *Simulation) Step() {
	var (
		cur  = s.buffers[s.current]
		next = s.buffers[1-s.current]
	)

	if s.workers <= 1 {
		stepRows(cur, next, 0, s.height)
	} else {
		var (
			eg            errgroup.Group
			rowsPerWorker = (s.height + s.workers - 1) / s.workers // Ceiling division
		)
		for i := range s.workers {
			var (
				startRow = i * rowsPerWorker
				endRow   = min(startRow+rowsPerWorker, s.height)
			)
			if startRow >= s.height {
				break
			}
			eg.Go(func() error {
				stepRows(cur, next, startRow, endRow)
				return nil
			})
		}
		// Bands never fail; Wait only joins them before the swap.
		_ = eg.Wait()
	}

	s.current = 1 - s.current
	s.generation++
}

// stepRows writes the next state of rows [startRow, endRow) of cur into next
func stepRows(cur, next *Field, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range cur.width {
			next.Set(x, y, cur.Next(x, y))
		}
	}
}

// Snapshot renders the current generation as text, one line per row
func (s *Simulation) Snapshot() string {
	var (
		b   strings.Builder
		cur = s.Current()
	)
	b.Grow(s.height * (s.width + 1))
	for y := range s.height {
		for x := range s.width {
			if cur.Alive(x, y) {
				b.WriteByte(cellAlive)
			} else {
				b.WriteByte(cellDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
