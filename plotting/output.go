package plotting

import (
	"strconv"

	"github.com/cyarp/commchar/results"
	"go.uber.org/multierr"
)

// Files names the outputs written for a file prefix.
type Files string

// Comm is the bar chart file.
func (f Files) Comm() string {
	return string(f) + "_comm.pdf"
}

// Sweep is the sweep chart file with the given extension (".pdf" or ".csv").
func (f Files) Sweep(points bool, ext string) string {
	name := string(f) + "_comm_sweep"
	if points {
		name += "_pts"
	}
	return name + ext
}

// Subplot is the file of the category with rule index i.
func (f Files) Subplot(i int) string {
	return string(f) + "_comm_sweep_pts_subplt" + strconv.Itoa(i) + ".pdf"
}

// DutyCycle is the duty cycle plot file of a category and column.
func (f Files) DutyCycle(i int, field string) string {
	return string(f) + "_comm_sweep_pts_subplt" + strconv.Itoa(i) + "_dutyCycle_" + field + ".pdf"
}

// DutyCycleCSV is the duty cycle export file.
func (f Files) DutyCycleCSV() string {
	return string(f) + "_comm_sweep_duty_cycle.csv"
}

// WriteBarChart draws the bar chart and saves it.
func WriteBarChart(res results.Results, rules results.Rules, opts BarOptions, files Files) error {
	plt, err := BarChart(res, rules, opts)
	if err != nil {
		return err
	}
	return Save(plt, files.Comm())
}

// WriteSweep writes the sweep chart and its CSV. With opts.Points it also
// writes the chart without points and one plot per category. Duty cycle plots
// are written for every category that carries duty cycle columns, and the
// duty cycle CSV only if at least one does. Saving continues past failures.
func WriteSweep(sweep *results.Sweep, rules results.Rules, opts SweepOptions, files Files) error {
	variants := []bool{opts.Points}
	if opts.Points {
		variants = append(variants, false)
	}
	var (
		figures []Figure
		saveErr error
	)
	for _, points := range variants {
		o := opts
		o.Points = points
		plt, err := SweepChart(sweep, rules, o)
		if err != nil {
			return err
		}
		figures = append(figures, Figure{Plot: plt, Filename: files.Sweep(points, ".pdf")})
		tbl, err := SweepTable(sweep, rules)
		if err != nil {
			return err
		}
		saveErr = multierr.Append(saveErr, tbl.SaveCSV(files.Sweep(points, ".csv")))
	}
	if opts.Points {
		plots, err := SweepSubplots(sweep, rules, opts)
		if err != nil {
			return err
		}
		for _, p := range plots {
			figures = append(figures, Figure{Plot: p.Plot, Filename: files.Subplot(p.Index)})
		}
	}
	dutyPlots, err := DutyCyclePlots(sweep, rules, opts.Title)
	if err != nil {
		return err
	}
	for _, p := range dutyPlots {
		figures = append(figures, Figure{Plot: p.Plot, Filename: files.DutyCycle(p.Index, p.Field)})
	}
	tbl, found, err := DutyCycleTable(sweep, rules)
	if err != nil {
		return err
	}
	saveErr = multierr.Append(saveErr, SaveAll(figures))
	if found {
		saveErr = multierr.Append(saveErr, tbl.SaveCSV(files.DutyCycleCSV()))
	}
	return saveErr
}
