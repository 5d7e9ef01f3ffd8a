package plotting

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cyarp/commchar/results"
	"go.uber.org/multierr"
)

// Table is a column oriented export. Empty cells stand for missing data.
type Table struct {
	Header []string
	Rows   [][]string
}

// WriteCSV writes the table with its header to w.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// SaveCSV writes the table to filename.
func (t *Table) SaveCSV(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()
	if err := t.WriteCSV(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// sweepTable starts a table with one row per block size.
func sweepTable(sweep *results.Sweep) *Table {
	t := &Table{Header: []string{"blkSizeBytes"}}
	for _, blkSize := range sweep.BlockSizesBytes {
		t.Rows = append(t.Rows, []string{strconv.Itoa(blkSize)})
	}
	return t
}

// addColumn appends a column holding metric(result) for every point that
// has rows for the category and an empty cell elsewhere.
func (t *Table) addColumn(sweep *results.Sweep, name, category string, metric func(results.TestResult) (string, error)) error {
	t.Header = append(t.Header, name)
	for i, p := range sweep.Points {
		cell := ""
		if r, ok := p.Results[category]; ok && r.Len() > 0 {
			v, err := metric(r)
			if err != nil {
				return fmt.Errorf("%s at block size %d: %w", name, p.BlockSizeBytes, err)
			}
			cell = v
		}
		t.Rows[i] = append(t.Rows[i], cell)
	}
	return nil
}

func avgRateCell(r results.TestResult) (string, error) {
	avg, err := results.AvgRate(r)
	if err != nil {
		return "", err
	}
	return formatCell(avg), nil
}

// SweepTable returns the average rate of every category at every block size.
func SweepTable(sweep *results.Sweep, rules results.Rules) (*Table, error) {
	t := sweepTable(sweep)
	for _, category := range sweep.Categories(rules) {
		if err := t.addColumn(sweep, category, category, avgRateCell); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// DutyCycleTable returns the average rate and the mean of every duty cycle
// column of each category at every block size. The second result is false if
// no category carries a duty cycle column.
func DutyCycleTable(sweep *results.Sweep, rules results.Rules) (*Table, bool, error) {
	t := sweepTable(sweep)
	found := false
	for _, category := range sweep.Categories(rules) {
		if err := t.addColumn(sweep, category+" - Rate (Gbps)", category, avgRateCell); err != nil {
			return nil, false, err
		}
		for _, field := range sweep.DutyCycles(category) {
			found = true
			field := field
			err := t.addColumn(sweep, category+" - "+field, category, func(r results.TestResult) (string, error) {
				if !results.HasDutyCycle(r, field) {
					return "", nil
				}
				mean, _, err := results.MeanDutyCycle(r, field)
				if err != nil {
					return "", err
				}
				return formatCell(mean), nil
			})
			if err != nil {
				return nil, false, err
			}
		}
	}
	return t, found, nil
}
