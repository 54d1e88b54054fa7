package walk

import (
	"errors"
	"math"
	"testing"
)

func TestSampler2DAccessorsBeforeCompute(t *testing.T) {
	s, err := NewSampler2D(Params{Inner: 5, Outer: 5, Bias: 0.5})
	if err != nil {
		t.Fatalf("NewSampler2D: %v", err)
	}

	if _, err := s.XValues(); !errors.Is(err, ErrNotComputed) {
		t.Errorf("XValues before Compute: got %v, want ErrNotComputed", err)
	}
	if _, err := s.Matrix(); !errors.Is(err, ErrNotComputed) {
		t.Errorf("Matrix before Compute: got %v, want ErrNotComputed", err)
	}
	if _, err := s.BelowZeroMatrix(); !errors.Is(err, ErrNotComputed) {
		t.Errorf("BelowZeroMatrix before Compute: got %v, want ErrNotComputed", err)
	}
	if _, _, err := s.FirstNonNegativeIndex(); !errors.Is(err, ErrNotComputed) {
		t.Errorf("FirstNonNegativeIndex before Compute: got %v, want ErrNotComputed", err)
	}
}

func TestSampler2DAlwaysUp(t *testing.T) {
	s, err := NewSampler2D(Params{Inner: 1, Outer: 2, Bias: 1.0}, WithSeed(1))
	if err != nil {
		t.Fatalf("NewSampler2D: %v", err)
	}
	s.Compute()

	dist, _ := s.Distribution()
	if dist.Len() != 1 {
		t.Fatalf("distinct coordinates = %d, want 1", dist.Len())
	}
	if c, ok := dist.Count(Point{X: 1, Y: 1}); !ok || c != 2 {
		t.Fatalf("Count((1,1)) = (%d, %t), want (2, true)", c, ok)
	}

	g, err := s.Matrix()
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	if !equalInts(g.X, []int{1}) || !equalInts(g.Y, []int{1}) {
		t.Fatalf("grid axes X=%v Y=%v, want [1] [1]", g.X, g.Y)
	}
	if len(g.Z) != 1 || len(g.Z[0]) != 1 || g.Z[0][0] != 2 {
		t.Fatalf("grid Z = %v, want [[2]]", g.Z)
	}

	i, ok, _ := s.FirstNonNegativeIndex()
	if !ok || i != 0 {
		t.Fatalf("FirstNonNegativeIndex = (%d, %t), want (0, true)", i, ok)
	}
	prob, _ := s.SuccessProbability()
	if prob != 1.0 {
		t.Fatalf("SuccessProbability = %g, want 1.0", prob)
	}
}

func TestSampler2DAlwaysDown(t *testing.T) {
	// With no deficit both axes record their starting position 0, so the
	// one coordinate reached sits in the non-negative quadrant.
	s, err := NewSampler2D(Params{Inner: 1, Outer: 3, Bias: 0.0}, WithSeed(1))
	if err != nil {
		t.Fatalf("NewSampler2D: %v", err)
	}
	s.Compute()

	dist, _ := s.Distribution()
	if c, ok := dist.Count(Point{X: 0, Y: 0}); !ok || c != 3 {
		t.Fatalf("Count((0,0)) = (%d, %t), want (3, true)", c, ok)
	}
	if i, ok, _ := s.FirstNonNegativeIndex(); !ok || i != 0 {
		t.Fatalf("FirstNonNegativeIndex = (%d, %t), want (0, true)", i, ok)
	}
	prob, _ := s.SuccessProbability()
	if prob != 1.0 {
		t.Fatalf("SuccessProbability = %g, want 1.0", prob)
	}
}

func TestSampler2DAllNegative(t *testing.T) {
	s, err := NewSampler2D(Params{Inner: 1, Outer: 3, Bias: 0.0, Offset: 1}, WithSeed(1))
	if err != nil {
		t.Fatalf("NewSampler2D: %v", err)
	}
	s.Compute()

	dist, _ := s.Distribution()
	if c, ok := dist.Count(Point{X: -1, Y: -1}); !ok || c != 3 {
		t.Fatalf("Count((-1,-1)) = (%d, %t), want (3, true)", c, ok)
	}
	if _, ok, _ := s.FirstNonNegativeIndex(); ok {
		t.Fatal("FirstNonNegativeIndex found an index with every coordinate negative")
	}
	prob, _ := s.SuccessProbability()
	if prob != 0 {
		t.Fatalf("SuccessProbability = %g, want 0", prob)
	}
}

func TestSampler2DKeysLexicographic(t *testing.T) {
	s, err := NewSampler2D(Params{Inner: 12, Outer: 2000, Bias: 0.5}, WithSeed(21))
	if err != nil {
		t.Fatalf("NewSampler2D: %v", err)
	}
	s.Compute()

	dist, _ := s.Distribution()
	keys := dist.Keys()
	for i := 1; i < len(keys); i++ {
		a, b := keys[i-1], keys[i]
		if a.X > b.X || (a.X == b.X && a.Y >= b.Y) {
			t.Fatalf("keys not in (x,y) lexicographic order at %d: %v, %v", i, a, b)
		}
	}

	// Projections preserve distribution order and restore the keys.
	xs, _ := s.XValues()
	ys, _ := s.YValues()
	if len(xs) != dist.Len() || len(ys) != dist.Len() {
		t.Fatalf("projection lengths %d/%d, want %d", len(xs), len(ys), dist.Len())
	}
	for i := range keys {
		if xs[i] != keys[i].X || ys[i] != keys[i].Y {
			t.Fatalf("projection mismatch at %d: (%d,%d) vs %v", i, xs[i], ys[i], keys[i])
		}
	}
}

func TestSampler2DMatrixInvariants(t *testing.T) {
	p := Params{Inner: 10, Outer: 3000, Bias: 0.5, Offset: 1}
	s, err := NewSampler2D(p, WithSeed(33))
	if err != nil {
		t.Fatalf("NewSampler2D: %v", err)
	}
	s.Compute()

	g, err := s.Matrix()
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}

	xs, _ := s.XValues()
	ys, _ := s.YValues()
	if g.Cols() != countDistinct(xs) {
		t.Fatalf("len(X) = %d, want %d distinct x-values", g.Cols(), countDistinct(xs))
	}
	if g.Rows() != countDistinct(ys) {
		t.Fatalf("len(Y) = %d, want %d distinct y-values", g.Rows(), countDistinct(ys))
	}

	dist, _ := s.Distribution()
	sum := 0.0
	for i, row := range g.Z {
		if len(row) != g.Cols() {
			t.Fatalf("row %d has %d columns, want %d", i, len(row), g.Cols())
		}
		for j, z := range row {
			sum += z
			c, ok := dist.Count(Point{X: g.XAt(i, j), Y: g.YAt(i, j)})
			if !ok && z != 0 {
				t.Fatalf("unreached cell (%d,%d) holds %g, want 0", g.X[j], g.Y[i], z)
			}
			if ok && z != float64(c) {
				t.Fatalf("cell (%d,%d) holds %g, want %d", g.X[j], g.Y[i], z, c)
			}
		}
	}
	if int(sum) != p.Outer {
		t.Fatalf("sum of grid counts = %g, want %d", sum, p.Outer)
	}
}

func TestSampler2DPartitionMatrices(t *testing.T) {
	p := Params{Inner: 8, Outer: 1500, Bias: 0.5, Offset: 1}
	s, err := NewSampler2D(p, WithSeed(17))
	if err != nil {
		t.Fatalf("NewSampler2D: %v", err)
	}
	s.Compute()

	g, _ := s.Matrix()
	below, err := s.BelowZeroMatrix()
	if err != nil {
		t.Fatalf("BelowZeroMatrix: %v", err)
	}
	above, err := s.AboveZeroMatrix()
	if err != nil {
		t.Fatalf("AboveZeroMatrix: %v", err)
	}

	if len(below) != g.Rows() || len(above) != g.Rows() {
		t.Fatalf("partition rows %d/%d, want %d", len(below), len(above), g.Rows())
	}

	dist, _ := s.Distribution()
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			x, y := g.X[j], g.Y[i]
			c, observed := dist.Count(Point{X: x, Y: y})

			wantBelow := math.NaN()
			wantAbove := math.NaN()
			if observed {
				if x < 0 || y < 0 {
					wantBelow = float64(c)
				} else {
					wantAbove = float64(c)
				}
			}
			checkCell(t, "below", x, y, below[i][j], wantBelow)
			checkCell(t, "above", x, y, above[i][j], wantAbove)
		}
	}
}

func TestSampler2DDeterministicSeed(t *testing.T) {
	p := Params{Inner: 15, Outer: 600, Bias: 0.4}
	a, err := NewSampler2D(p, WithSeed(77), WithWorkers(1))
	if err != nil {
		t.Fatalf("NewSampler2D: %v", err)
	}
	b, err := NewSampler2D(p, WithSeed(77), WithWorkers(6))
	if err != nil {
		t.Fatalf("NewSampler2D: %v", err)
	}
	a.Compute()
	b.Compute()

	da, _ := a.Distribution()
	db, _ := b.Distribution()
	if da.Len() != db.Len() {
		t.Fatalf("distinct coordinates differ: %d vs %d", da.Len(), db.Len())
	}
	ka, kb := da.Keys(), db.Keys()
	ca, cb := da.Counts(), db.Counts()
	for i := range ka {
		if ka[i] != kb[i] || ca[i] != cb[i] {
			t.Fatalf("same seed diverged at %d: %v:%d vs %v:%d", i, ka[i], ca[i], kb[i], cb[i])
		}
	}
}

func checkCell(t *testing.T, name string, x, y int, got, want float64) {
	t.Helper()
	if math.IsNaN(want) {
		if !math.IsNaN(got) {
			t.Fatalf("%s cell (%d,%d) = %g, want NaN", name, x, y, got)
		}
		return
	}
	if got != want {
		t.Fatalf("%s cell (%d,%d) = %g, want %g", name, x, y, got, want)
	}
}

func countDistinct(vs []int) int {
	seen := make(map[int]bool, len(vs))
	for _, v := range vs {
		seen[v] = true
	}
	return len(seen)
}
