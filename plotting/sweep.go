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

// DefaultSweepTitle is the sweep chart title used when none is configured.
const DefaultSweepTitle = "Laminar Comm Characterize Sweep Results"

// SweepOptions configures the sweep plots.
type SweepOptions struct {
	Title string
	YLim  Range
	// Points adds the per-row rates of every point as a translucent scatter.
	Points bool
}

// categoryColor returns the color of the category at index i of the rule table.
func categoryColor(i int) color.Color {
	return plotutil.Color(i)
}

func newScatter(xs, ys []float64, c color.Color) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(newXYer(xs, ys))
	if err != nil {
		return nil, fmt.Errorf("failed to create scatter plot: %w", err)
	}
	s.GlyphStyle.Color = translucent(c, pointAlpha)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(2)
	return s, nil
}

func newAvgLine(xs, ys []float64, c color.Color) (*plotter.Line, error) {
	l, err := plotter.NewLine(newXYer(xs, ys))
	if err != nil {
		return nil, fmt.Errorf("failed to create line plot: %w", err)
	}
	l.Color = c
	l.Width = avgLineWidth
	return l, nil
}

// eachCategory calls fn for every category with data in the sweep, passing its
// index in the rule table.
func eachCategory(sweep *results.Sweep, rules results.Rules, fn func(i int, category string) error) error {
	present := make(map[string]bool)
	for _, c := range sweep.Categories(rules) {
		present[c] = true
	}
	for i, rule := range rules {
		if !present[rule.Name] {
			continue
		}
		if err := fn(i, rule.Name); err != nil {
			return err
		}
	}
	return nil
}

// SweepChart plots the average rate of every category against the block size.
// Categories missing from a point have no data there; their line only
// connects the points that have it.
func SweepChart(sweep *results.Sweep, rules results.Rules, opts SweepOptions) (*plot.Plot, error) {
	plt := newPlot(opts.Title, blockSizeLabel, rateLabel)

	// points go first so the lines are drawn on top
	if opts.Points {
		err := eachCategory(sweep, rules, func(i int, category string) error {
			xs, ys := sweep.Scatter(category)
			s, err := newScatter(xs, ys, categoryColor(i))
			if err != nil {
				return err
			}
			plt.Add(s)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	err := eachCategory(sweep, rules, func(i int, category string) error {
		xs, ys, err := sweep.Series(category, results.AvgRate)
		if err != nil {
			return err
		}
		l, err := newAvgLine(xs, ys, categoryColor(i))
		if err != nil {
			return err
		}
		plt.Add(l)
		plt.Legend.Add(category, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	opts.YLim.apply(&plt.Y)
	return plt, nil
}

// CategoryPlot is a plot of a single category. Index is the position of the
// category in the rule table.
type CategoryPlot struct {
	Plot     *plot.Plot
	Index    int
	Category string
}

// SweepSubplots returns one plot per category with the raw rates and a black
// average line. Unless opts.YLim is set, all plots share the y range that
// fits every one of them.
func SweepSubplots(sweep *results.Sweep, rules results.Rules, opts SweepOptions) ([]CategoryPlot, error) {
	var plots []CategoryPlot
	err := eachCategory(sweep, rules, func(i int, category string) error {
		plt := newPlot(opts.Title, blockSizeLabel, rateLabel)

		xs, ys := sweep.Scatter(category)
		s, err := newScatter(xs, ys, categoryColor(i))
		if err != nil {
			return err
		}
		plt.Add(s)
		plt.Legend.Add(category, s)

		xs, ys, err = sweep.Series(category, results.AvgRate)
		if err != nil {
			return err
		}
		l, err := newAvgLine(xs, ys, color.Black)
		if err != nil {
			return err
		}
		plt.Add(l)
		plt.Legend.Add(category+" - Harmonic Avg.", l)

		plots = append(plots, CategoryPlot{Plot: plt, Index: i, Category: category})
		return nil
	})
	if err != nil {
		return nil, err
	}

	yLim := opts.YLim
	if !yLim.IsSet() && len(plots) > 0 {
		yLim = Range{Low: math.Inf(1), High: math.Inf(-1)}
		for _, p := range plots {
			yLim.Low = math.Min(yLim.Low, p.Plot.Y.Min)
			yLim.High = math.Max(yLim.High, p.Plot.Y.Max)
		}
	}
	for _, p := range plots {
		yLim.apply(&p.Plot.Y)
	}
	return plots, nil
}

// DutyCyclePlot is the duty cycle plot of one column of one category.
type DutyCyclePlot struct {
	CategoryPlot
	Field string
}

// DutyCyclePlots returns one plot per category and duty cycle column with the
// raw values and a black line through the mean of every point. The y axis
// spans [0, 1.1].
func DutyCyclePlots(sweep *results.Sweep, rules results.Rules, title string) ([]DutyCyclePlot, error) {
	var plots []DutyCyclePlot
	err := eachCategory(sweep, rules, func(i int, category string) error {
		for _, field := range sweep.DutyCycles(category) {
			plt := newPlot(title, blockSizeLabel, dutyCycleLabel)

			xs, ys, err := sweep.DutyCycleScatter(category, field)
			if err != nil {
				return err
			}
			s, err := newScatter(xs, ys, categoryColor(i))
			if err != nil {
				return err
			}
			plt.Add(s)
			plt.Legend.Add(category+" - "+field, s)

			xs, ys, err = dutyCycleSeries(sweep, category, field)
			if err != nil {
				return err
			}
			l, err := newAvgLine(xs, ys, color.Black)
			if err != nil {
				return err
			}
			plt.Add(l)
			plt.Legend.Add(category+" - Avg.", l)

			Range{Low: 0, High: 1.1}.apply(&plt.Y)
			plots = append(plots, DutyCyclePlot{
				CategoryPlot: CategoryPlot{Plot: plt, Index: i, Category: category},
				Field:        field,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plots, nil
}

// dutyCycleSeries returns the mean of the duty cycle column at every point whose result carries it.
func dutyCycleSeries(sweep *results.Sweep, category, field string) (xs, ys []float64, err error) {
	for _, p := range sweep.Points {
		r, ok := p.Results[category]
		if !ok || !results.HasDutyCycle(r, field) {
			continue
		}
		mean, _, err := results.MeanDutyCycle(r, field)
		if err != nil {
			return nil, nil, fmt.Errorf("block size %d: %w", p.BlockSizeBytes, err)
		}
		xs = append(xs, float64(p.BlockSizeBytes))
		ys = append(ys, mean)
	}
	return xs, ys, nil
}
