// Package render draws computed walk distributions using gonum/plot: a bar
// chart with a smoothed overlay curve for 1D runs and a heat map of the
// occurrence matrix for 2D runs. It is presentation only; the walk package
// never depends on it.
package render

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Noofbiz/randwalk/walk"
)

// smoothSamples is the resolution of the smoothed overlay curve.
const smoothSamples = 200

// Bar writes a bar chart of heights over values to path. The output format
// follows the file extension (png, svg, pdf, ...). values and heights are the
// parallel sequences of a computed 1D sampler.
func Bar(values, heights []int, path string) error {
	if len(values) == 0 || len(values) != len(heights) {
		return fmt.Errorf("render: need equal-length non-empty values/heights, got %d/%d", len(values), len(heights))
	}

	p := plot.New()
	p.Title.Text = "Binomial random walk"
	p.X.Label.Text = "reached maximum"
	p.Y.Label.Text = "repetitions"

	hs := make(plotter.Values, len(heights))
	labels := make([]string, len(values))
	for i := range heights {
		hs[i] = float64(heights[i])
		labels[i] = strconv.Itoa(values[i])
	}

	bars, err := plotter.NewBarChart(hs, vg.Points(8))
	if err != nil {
		return fmt.Errorf("render: bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 20, G: 80, B: 200, A: 220}
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	if line, err := smoothLine(heights); err == nil {
		p.Add(line)
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// smoothLine fits a cubic spline over the bar positions and resamples it at
// smoothSamples points to draw a smooth curve across the bar tops. Fewer
// than two bars cannot be smoothed.
func smoothLine(heights []int) (*plotter.Line, error) {
	if len(heights) < 2 {
		return nil, fmt.Errorf("render: need at least 2 points to smooth, got %d", len(heights))
	}

	xs := make([]float64, len(heights))
	ys := make([]float64, len(heights))
	for i, h := range heights {
		xs[i] = float64(i)
		ys[i] = float64(h)
	}

	var spline interp.AkimaSpline
	if err := spline.Fit(xs, ys); err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, smoothSamples)
	span := xs[len(xs)-1] - xs[0]
	for i := range pts {
		x := xs[0] + span*float64(i)/float64(smoothSamples-1)
		pts[i].X = x
		pts[i].Y = spline.Predict(x)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{R: 200, G: 30, B: 30, A: 220}
	line.Width = vg.Points(1.2)
	return line, nil
}

// Heatmap writes a heat map of the dense occurrence matrix to path.
func Heatmap(g *walk.Grid, path string) error {
	if g == nil || g.Cols() == 0 || g.Rows() == 0 {
		return fmt.Errorf("render: empty grid")
	}

	p := plot.New()
	p.Title.Text = "2D binomial random walk"
	p.X.Label.Text = "x maximum"
	p.Y.Label.Text = "y maximum"

	pal := moreland.SmoothBlueRed().Palette(255)
	p.Add(plotter.NewHeatMap(gridXYZ{g}, pal))

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// gridXYZ adapts walk.Grid to plotter.GridXYZ.
type gridXYZ struct {
	g *walk.Grid
}

func (g gridXYZ) Dims() (c, r int)   { return g.g.Cols(), g.g.Rows() }
func (g gridXYZ) Z(c, r int) float64 { return g.g.Z[r][c] }
func (g gridXYZ) X(c int) float64    { return float64(g.g.X[c]) }
func (g gridXYZ) Y(r int) float64    { return float64(g.g.Y[r]) }
