package walk

import (
	"math"
	"math/rand"
	"sort"
)

// Point is a 2D repetition result: the recorded maxima of the two axes of
// one repetition.
type Point struct {
	X int
	Y int
}

// Distribution2D is a frozen frequency distribution over 2D repetition
// results, keyed in (x, y) lexicographic order.
type Distribution2D struct {
	keys   []Point
	counts []int
	index  map[Point]int
}

// newDistribution2D pairs the i-th x maximum with the i-th y maximum and
// counts occurrences per distinct coordinate. xs and ys have equal length.
func newDistribution2D(xs, ys []int) *Distribution2D {
	byPoint := make(map[Point]int, len(xs))
	for i := range xs {
		byPoint[Point{X: xs[i], Y: ys[i]}]++
	}

	keys := make([]Point, 0, len(byPoint))
	for p := range byPoint {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].X != keys[j].X {
			return keys[i].X < keys[j].X
		}
		return keys[i].Y < keys[j].Y
	})

	d := &Distribution2D{
		keys:   keys,
		counts: make([]int, len(keys)),
		index:  make(map[Point]int, len(keys)),
	}
	for i, k := range keys {
		d.counts[i] = byPoint[k]
		d.index[k] = i
	}
	return d
}

// Len returns the number of distinct coordinates.
func (d *Distribution2D) Len() int { return len(d.keys) }

// Keys returns the distinct coordinates in lexicographic order.
func (d *Distribution2D) Keys() []Point {
	out := make([]Point, len(d.keys))
	copy(out, d.keys)
	return out
}

// Counts returns the occurrence counts, parallel to Keys.
func (d *Distribution2D) Counts() []int {
	out := make([]int, len(d.counts))
	copy(out, d.counts)
	return out
}

// Count reports the occurrence count of p and whether p was observed.
func (d *Distribution2D) Count(p Point) (int, bool) {
	i, ok := d.index[p]
	if !ok {
		return 0, false
	}
	return d.counts[i], true
}

// Total returns the sum of all counts.
func (d *Distribution2D) Total() int {
	total := 0
	for _, c := range d.counts {
		total += c
	}
	return total
}

// Grid is the dense occurrence matrix of a 2D distribution. X holds the
// sorted distinct x-values (columns), Y the sorted distinct y-values (rows),
// and Z is a len(Y) x len(X) grid of counts with 0 where the coordinate was
// never reached. Cell (i, j) covers coordinate (X[j], Y[i]); XAt and YAt
// expose the broadcast coordinate grids without materializing them.
type Grid struct {
	X []int
	Y []int
	Z [][]float64
}

// Cols returns the number of columns, len(X).
func (g *Grid) Cols() int { return len(g.X) }

// Rows returns the number of rows, len(Y).
func (g *Grid) Rows() int { return len(g.Y) }

// XAt returns the x coordinate of cell (i, j): column j's value, identical
// for every row.
func (g *Grid) XAt(i, j int) int { return g.X[j] }

// YAt returns the y coordinate of cell (i, j): row i's value, identical for
// every column.
func (g *Grid) YAt(i, j int) int { return g.Y[i] }

// Sampler2D runs the 2D simulation: two independent 1D passes over the same
// parameters, paired positionally into coordinates. Construct with
// NewSampler2D and call Compute before any accessor.
type Sampler2D struct {
	params  Params
	rng     *rand.Rand
	workers int
	dist    *Distribution2D
}

// NewSampler2D creates a 2D sampler. Parameter validation matches NewSampler.
func NewSampler2D(p Params, opts ...Option) (*Sampler2D, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return &Sampler2D{params: p, rng: rand.New(o.src), workers: o.workers}, nil
}

// Params returns the sampler's simulation parameters.
func (s *Sampler2D) Params() Params { return s.params }

// Compute runs the x-axis pass then the y-axis pass, pairs the i-th results
// of each, and replaces any previously computed distribution.
func (s *Sampler2D) Compute() {
	xs := runRepetitions(s.params, s.rng, s.workers)
	ys := runRepetitions(s.params, s.rng, s.workers)
	s.dist = newDistribution2D(xs, ys)
}

// Distribution returns the computed 2D frequency distribution.
func (s *Sampler2D) Distribution() (*Distribution2D, error) {
	if s.dist == nil {
		return nil, ErrNotComputed
	}
	return s.dist, nil
}

// XValues projects the key sequence onto the x axis, preserving distribution
// order. Values are not deduplicated.
func (s *Sampler2D) XValues() ([]int, error) {
	if s.dist == nil {
		return nil, ErrNotComputed
	}
	out := make([]int, len(s.dist.keys))
	for i, k := range s.dist.keys {
		out[i] = k.X
	}
	return out, nil
}

// YValues projects the key sequence onto the y axis, preserving distribution
// order. Values are not deduplicated.
func (s *Sampler2D) YValues() ([]int, error) {
	if s.dist == nil {
		return nil, ErrNotComputed
	}
	out := make([]int, len(s.dist.keys))
	for i, k := range s.dist.keys {
		out[i] = k.Y
	}
	return out, nil
}

// Heights returns the occurrence counts, parallel to the key sequence.
func (s *Sampler2D) Heights() ([]int, error) {
	if s.dist == nil {
		return nil, ErrNotComputed
	}
	return s.dist.Counts(), nil
}

// FirstNonNegativeIndex returns the index of the first key with both x >= 0
// and y >= 0 in the lexicographically sorted key sequence. The second result
// is false when no such coordinate was reached.
func (s *Sampler2D) FirstNonNegativeIndex() (int, bool, error) {
	if s.dist == nil {
		return 0, false, ErrNotComputed
	}
	for i, k := range s.dist.keys {
		if k.X >= 0 && k.Y >= 0 {
			return i, true, nil
		}
	}
	return 0, false, nil
}

// SuccessProbability returns the fraction of repetitions whose coordinate
// from FirstNonNegativeIndex onward was reached, or 0 when no repetition
// reached the non-negative quadrant.
func (s *Sampler2D) SuccessProbability() (float64, error) {
	i, ok, err := s.FirstNonNegativeIndex()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	reached := 0
	for _, c := range s.dist.counts[i:] {
		reached += c
	}
	outer := float64(s.params.Outer)
	return 1 - (outer-float64(reached))/outer, nil
}

// Matrix densifies the distribution into a Grid. Rows and columns are in
// ascending y and x order, so the layout is deterministic for a given
// distribution; unreached coordinates hold 0.
func (s *Sampler2D) Matrix() (*Grid, error) {
	if s.dist == nil {
		return nil, ErrNotComputed
	}

	xs := distinctSorted(func(k Point) int { return k.X }, s.dist.keys)
	ys := distinctSorted(func(k Point) int { return k.Y }, s.dist.keys)

	z := make([][]float64, len(ys))
	for i, y := range ys {
		row := make([]float64, len(xs))
		for j, x := range xs {
			if c, ok := s.dist.Count(Point{X: x, Y: y}); ok {
				row[j] = float64(c)
			}
		}
		z[i] = row
	}
	return &Grid{X: xs, Y: ys, Z: z}, nil
}

// BelowZeroMatrix returns a grid the shape of Matrix's Z holding the count of
// every reached coordinate with x < 0 or y < 0 and NaN everywhere else.
// Coordinates inside the partition that were never reached are NaN as well,
// matching the unreached sentinel of AboveZeroMatrix.
func (s *Sampler2D) BelowZeroMatrix() ([][]float64, error) {
	return s.partitionMatrix(func(x, y int) bool { return x < 0 || y < 0 })
}

// AboveZeroMatrix is the mirror of BelowZeroMatrix for coordinates with
// x >= 0 and y >= 0.
func (s *Sampler2D) AboveZeroMatrix() ([][]float64, error) {
	return s.partitionMatrix(func(x, y int) bool { return x >= 0 && y >= 0 })
}

func (s *Sampler2D) partitionMatrix(keep func(x, y int) bool) ([][]float64, error) {
	g, err := s.Matrix()
	if err != nil {
		return nil, err
	}

	z := make([][]float64, g.Rows())
	for i := range z {
		row := make([]float64, g.Cols())
		for j := range row {
			row[j] = math.NaN()
			if !keep(g.X[j], g.Y[i]) {
				continue
			}
			if c, ok := s.dist.Count(Point{X: g.X[j], Y: g.Y[i]}); ok {
				row[j] = float64(c)
			}
		}
		z[i] = row
	}
	return z, nil
}

// distinctSorted collects the distinct values of one axis of the keys, in
// ascending order.
func distinctSorted(axis func(Point) int, keys []Point) []int {
	seen := make(map[int]bool, len(keys))
	out := make([]int, 0, len(keys))
	for _, k := range keys {
		v := axis(k)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
