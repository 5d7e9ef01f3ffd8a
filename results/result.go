package results

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// TestResult is the set of rows loaded for one test category.
// The only implementations are *FIFOResult and *MemoryResult.
type TestResult interface {
	// Name returns the category name.
	Name() string
	// Kind returns the report kind shared by all rows.
	Kind() Kind
	// Len returns the number of rows.
	Len() int
	// Labels returns the label of every row, in row order.
	Labels() []string
	// Rates returns the primary derived rate (Gbps) of every row, in row order.
	// For FIFO results this is the server rate.
	Rates() []float64

	extra(i int) map[string]string
}

// FIFOResult holds the rows of a FIFO category.
type FIFOResult struct {
	name string
	rows []FIFORow
}

// NewFIFOResult returns a FIFO result over a copy of rows.
// Derived rates are recomputed from the raw columns.
func NewFIFOResult(name string, rows []FIFORow) *FIFOResult {
	r := &FIFOResult{name: name, rows: slices.Clone(rows)}
	for i := range r.rows {
		r.rows[i].derive()
	}
	return r
}

func (r *FIFOResult) Name() string { return r.name }
func (r *FIFOResult) Kind() Kind   { return FIFO }
func (r *FIFOResult) Len() int     { return len(r.rows) }

// Rows returns a copy of the rows.
func (r *FIFOResult) Rows() []FIFORow { return slices.Clone(r.rows) }

// Row returns the i'th row.
func (r *FIFOResult) Row(i int) FIFORow { return r.rows[i] }

func (r *FIFOResult) Labels() []string {
	labels := make([]string, len(r.rows))
	for i, row := range r.rows {
		labels[i] = row.Label
	}
	return labels
}

func (r *FIFOResult) Rates() []float64 {
	rates := make([]float64, len(r.rows))
	for i, row := range r.rows {
		rates[i] = row.ServerGbps
	}
	return rates
}

func (r *FIFOResult) extra(i int) map[string]string { return r.rows[i].Extra }

// MemoryResult holds the rows of a memory category.
type MemoryResult struct {
	name string
	rows []MemoryRow
}

// NewMemoryResult returns a memory result over a copy of rows.
// Derived rates are recomputed from the raw columns.
func NewMemoryResult(name string, rows []MemoryRow) *MemoryResult {
	r := &MemoryResult{name: name, rows: slices.Clone(rows)}
	for i := range r.rows {
		r.rows[i].derive()
	}
	return r
}

func (r *MemoryResult) Name() string { return r.name }
func (r *MemoryResult) Kind() Kind   { return Memory }
func (r *MemoryResult) Len() int     { return len(r.rows) }

// Rows returns a copy of the rows.
func (r *MemoryResult) Rows() []MemoryRow { return slices.Clone(r.rows) }

// Row returns the i'th row.
func (r *MemoryResult) Row(i int) MemoryRow { return r.rows[i] }

func (r *MemoryResult) Labels() []string {
	labels := make([]string, len(r.rows))
	for i, row := range r.rows {
		labels[i] = row.Label
	}
	return labels
}

func (r *MemoryResult) Rates() []float64 {
	rates := make([]float64, len(r.rows))
	for i, row := range r.rows {
		rates[i] = row.Gbps
	}
	return rates
}

func (r *MemoryResult) extra(i int) map[string]string { return r.rows[i].Extra }

// Results maps category names to the results loaded for them.
// A category without matching report files is absent.
type Results map[string]TestResult

// Names returns the category names in sorted order.
func (rs Results) Names() []string {
	names := maps.Keys(rs)
	slices.Sort(names)
	return names
}

// Ordered returns the results in the order of the rules, skipping absent categories.
func (rs Results) Ordered(rules Rules) []TestResult {
	var ordered []TestResult
	for _, rule := range rules {
		if r, ok := rs[rule.Name]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered
}
