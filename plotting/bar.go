package plotting

import (
	"fmt"
	"image/color"
	"math"

	"github.com/cyarp/commchar/results"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultTitle is the bar chart title used when none is configured.
const DefaultTitle = "Laminar Comm Characterize Results"

// BarOptions configures BarChart.
type BarOptions struct {
	Title string
	YLim  Range
	// AvgLines draws a dashed line at the average rate of each category.
	AvgLines bool
}

// BarChart draws one bar per row, grouped by category in rule order with a
// gap between categories. Bars are labelled with the row labels.
func BarChart(res results.Results, rules results.Rules, opts BarOptions) (*plot.Plot, error) {
	ordered := res.Ordered(rules)
	if len(ordered) == 0 {
		return nil, fmt.Errorf("no results to plot")
	}

	positions := 0
	for _, r := range ordered {
		if r.Len() > 0 {
			positions += r.Len() + 1
		}
	}
	if positions == 0 {
		return nil, fmt.Errorf("no rows to plot")
	}
	// one data unit per bar across the data area
	width := Width / vg.Length(positions+1)

	plt := newPlot(opts.Title, "", rateLabel)
	plt.X.Tick.Label.Rotation = math.Pi / 2
	plt.X.Tick.Label.XAlign = draw.XRight
	plt.X.Tick.Label.YAlign = draw.YCenter
	plt.X.Tick.Label.Font.Size = vg.Points(3)

	var (
		ticks   []plot.Tick
		offset  int
		centers []float64
		avgs    []float64
		colors  []color.Color
	)
	for i, r := range ordered {
		if r.Len() == 0 {
			continue
		}
		bars, err := plotter.NewBarChart(plotter.Values(r.Rates()), width)
		if err != nil {
			return nil, fmt.Errorf("failed to create bar chart for %q: %w", r.Name(), err)
		}
		bars.XMin = float64(offset)
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = 0
		plt.Add(bars)
		plt.Legend.Add(r.Name(), bars)

		for j, lbl := range r.Labels() {
			ticks = append(ticks, plot.Tick{Value: float64(offset + j), Label: lbl})
		}
		if opts.AvgLines {
			avg, err := results.AvgRate(r)
			if err != nil {
				return nil, err
			}
			avgs = append(avgs, avg)
			colors = append(colors, bars.Color)
			centers = append(centers, float64(offset)+float64(r.Len()-1)/2)
		}
		offset += r.Len() + 1
	}
	plt.X.Tick.Marker = plot.ConstantTicks(ticks)

	xMin, xMax := -0.5, float64(offset-1)-0.5
	if opts.AvgLines {
		if err := addAvgLines(plt, xMin, xMax, centers, avgs, colors); err != nil {
			return nil, err
		}
	}
	plt.X.Min = xMin
	plt.X.Max = xMax
	opts.YLim.apply(&plt.Y)
	return plt, nil
}

// addAvgLines draws a dashed horizontal line for every average spanning the
// whole x range and labels it with its value at the center of its group.
func addAvgLines(plt *plot.Plot, xMin, xMax float64, centers, avgs []float64, colors []color.Color) error {
	labels := plotter.XYLabels{}
	for i, avg := range avgs {
		line, err := plotter.NewLine(plotter.XYs{{X: xMin, Y: avg}, {X: xMax, Y: avg}})
		if err != nil {
			return fmt.Errorf("failed to create average line: %w", err)
		}
		line.Color = colors[i]
		line.Dashes = plotutil.Dashes(1)
		line.Width = avgLineWidth
		plt.Add(line)

		labels.XYs = append(labels.XYs, plotter.XY{X: centers[i], Y: avg})
		labels.Labels = append(labels.Labels, fmt.Sprintf("%.1f", avg))
	}
	lbls, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("failed to create average labels: %w", err)
	}
	for i := range lbls.TextStyle {
		lbls.TextStyle[i].XAlign = draw.XCenter
		lbls.TextStyle[i].YAlign = draw.YCenter
		lbls.TextStyle[i].Font.Size = legendFontSize
	}
	plt.Add(lbls)
	return nil
}
