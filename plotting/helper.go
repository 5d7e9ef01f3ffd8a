package plotting

import (
	"fmt"
	"image/color"

	"go-hep.org/x/hep/hplot"
	"go.uber.org/multierr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Default figure size.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

const (
	rateLabel      = "Rate (Gbps)"
	blockSizeLabel = "Block Size (bytes)"
	dutyCycleLabel = "Duty Cycle"

	// alpha of raw data points
	pointAlpha     = 0.1
	avgLineWidth   = vg.Length(1)
	legendFontSize = vg.Length(8)
)

// Range is a closed axis range. The zero Range means "automatic".
type Range struct {
	Low  float64
	High float64
}

// IsSet reports whether the range was given.
func (r Range) IsSet() bool {
	return r != Range{}
}

// Validate checks that Low is below High.
func (r Range) Validate() error {
	if r.IsSet() && r.Low >= r.High {
		return fmt.Errorf("y limit should be supplied with the lowest number first: %g >= %g", r.Low, r.High)
	}
	return nil
}

func (r Range) apply(axis *plot.Axis) {
	if r.IsSet() {
		axis.Min = r.Low
		axis.Max = r.High
	}
}

// newPlot returns a plot with a dashed grid and the axis labels set.
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	plt := plot.New()
	plt.Title.Text = title

	grid := plotter.NewGrid()
	grid.Horizontal.Color = color.Gray{Y: 200}
	grid.Horizontal.Dashes = plotutil.Dashes(2)
	grid.Vertical.Color = color.Gray{Y: 200}
	grid.Vertical.Dashes = plotutil.Dashes(2)
	plt.Add(grid)

	plt.X.Label.Text = xLabel
	plt.X.Tick.Marker = hplot.Ticks{N: 10}
	plt.Y.Label.Text = yLabel
	plt.Y.Tick.Marker = hplot.Ticks{N: 10}

	plt.Legend.Top = true
	plt.Legend.TextStyle.Font.Size = legendFontSize
	return plt
}

// translucent returns c with the given opacity.
func translucent(c color.Color, alpha float64) color.Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	nrgba.A = uint8(alpha * 255)
	return nrgba
}

// Figure is a plot and the file it is saved to.
type Figure struct {
	Plot     *plot.Plot
	Filename string
}

// Save writes the plot to filename. The format follows the file extension
// (pdf, png, svg, eps, ...).
func Save(plt *plot.Plot, filename string) error {
	if err := plt.Save(Width, Height, filename); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// SaveAll saves every figure, continuing past failures.
func SaveAll(figures []Figure) (err error) {
	for _, f := range figures {
		err = multierr.Append(err, Save(f.Plot, f.Filename))
	}
	return err
}

type point struct {
	x float64
	y float64
}

type xyer []point

func newXYer(xs, ys []float64) xyer {
	points := make(xyer, len(xs))
	for i := range xs {
		points[i] = point{x: xs[i], y: ys[i]}
	}
	return points
}

// Len returns the number of x, y pairs.
func (xy xyer) Len() int {
	return len(xy)
}

// XY returns an x, y pair.
func (xy xyer) XY(i int) (x float64, y float64) {
	p := xy[i]
	return p.x, p.y
}
