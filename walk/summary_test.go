package walk

import (
	"math"
	"testing"
)

func TestSummarizeSingleValue(t *testing.T) {
	// bias 1 forces every repetition to the same maximum.
	s, err := NewSampler(Params{Inner: 2, Outer: 5, Bias: 1.0}, WithSeed(1))
	if err != nil {
		t.Fatalf("NewSampler: %v", err)
	}
	s.Compute()

	dist, _ := s.Distribution()
	sum := Summarize(dist)
	if sum.Mean != 2 || sum.Min != 2 || sum.Max != 2 {
		t.Fatalf("Summary = %+v, want mean/min/max all 2", sum)
	}
	if sum.StdDev != 0 {
		t.Fatalf("StdDev = %g, want 0", sum.StdDev)
	}
	if sum.Median != 2 || sum.P90 != 2 {
		t.Fatalf("Median/P90 = %g/%g, want 2/2", sum.Median, sum.P90)
	}
}

func TestSummarizeWeighted(t *testing.T) {
	d := newDistribution([]int{1, 1, 2, 3})

	sum := Summarize(d)
	if got, want := sum.Mean, 1.75; math.Abs(got-want) > 1e-12 {
		t.Fatalf("Mean = %g, want %g", got, want)
	}
	// Weighted sample standard deviation: sqrt(11/12).
	if got, want := sum.StdDev, math.Sqrt(11.0/12.0); math.Abs(got-want) > 1e-12 {
		t.Fatalf("StdDev = %g, want %g", got, want)
	}
	if sum.Min != 1 || sum.Max != 3 {
		t.Fatalf("Min/Max = %d/%d, want 1/3", sum.Min, sum.Max)
	}
	if sum.Median < 1 || sum.Median > 3 || sum.P90 < sum.Median || sum.P90 > 3 {
		t.Fatalf("quantiles out of range: median=%g p90=%g", sum.Median, sum.P90)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	var zero Summary
	if got := Summarize(newDistribution(nil)); got != zero {
		t.Fatalf("Summarize(empty) = %+v, want zero value", got)
	}
}
