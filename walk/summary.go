package walk

import (
	"gonum.org/v1/gonum/stat"
)

// Summary describes a computed distribution: count-weighted moments and
// quantiles over the recorded maxima.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    int
	Max    int
	Median float64
	P90    float64
}

// Summarize computes summary statistics for a distribution. The distribution
// keys act as sample values weighted by their occurrence counts, so the
// result is identical to summarizing the raw repetition results.
func Summarize(d *Distribution) Summary {
	if d.Len() == 0 {
		return Summary{}
	}

	xs := make([]float64, d.Len())
	ws := make([]float64, d.Len())
	for i, k := range d.keys {
		xs[i] = float64(k)
		ws[i] = float64(d.counts[i])
	}

	return Summary{
		Mean:   stat.Mean(xs, ws),
		StdDev: stat.StdDev(xs, ws),
		Min:    d.keys[0],
		Max:    d.keys[d.Len()-1],
		Median: stat.Quantile(0.5, stat.Empirical, xs, ws),
		P90:    stat.Quantile(0.9, stat.Empirical, xs, ws),
	}
}
