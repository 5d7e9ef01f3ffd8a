package results

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Summary holds the aggregate rates of a result.
type Summary struct {
	Name    string
	Kind    Kind
	Trials  int
	AvgGbps float64
	MinGbps float64
	MaxGbps float64
}

// totals returns the bytes and seconds that make up the primary rate of r.
func totals(r TestResult) (bytes, seconds []float64, err error) {
	switch r := r.(type) {
	case *FIFOResult:
		for _, row := range r.rows {
			bytes = append(bytes, float64(row.BytesTx))
			seconds = append(seconds, row.ServerTime)
		}
	case *MemoryResult:
		for _, row := range r.rows {
			bytes = append(bytes, float64(row.BytesTransacted))
			seconds = append(seconds, row.MemoryTime)
		}
	default:
		return nil, nil, fmt.Errorf("%w: %T", ErrUnknownKind, r)
	}
	return bytes, seconds, nil
}

func ratio(name string, bytes, seconds []float64) (float64, error) {
	if len(bytes) == 0 {
		return 0, fmt.Errorf("average rate of %q: %w: no rows", name, ErrDivisionByZero)
	}
	total := floats.Sum(seconds)
	if total == 0 {
		return 0, fmt.Errorf("average rate of %q: %w: total time is zero", name, ErrDivisionByZero)
	}
	return gbps(floats.Sum(bytes), total), nil
}

// AvgRate returns the total bytes over the total time of all rows in Gbps.
// This weighs every trial by its duration; it equals the time weighted
// harmonic mean of the per-row rates and is not their arithmetic mean.
// FIFO results use the server side (BytesTx and ServerTime).
func AvgRate(r TestResult) (float64, error) {
	bytes, seconds, err := totals(r)
	if err != nil {
		return 0, err
	}
	return ratio(r.Name(), bytes, seconds)
}

// ClientAvgRate is AvgRate computed from the client side of a FIFO result.
func ClientAvgRate(r *FIFOResult) (float64, error) {
	var bytes, seconds []float64
	for _, row := range r.rows {
		bytes = append(bytes, float64(row.BytesRx))
		seconds = append(seconds, row.ClientTime)
	}
	return ratio(r.Name(), bytes, seconds)
}

// MinRate returns the smallest per-row rate in Gbps.
func MinRate(r TestResult) (float64, error) {
	rates, err := primaryRates(r)
	if err != nil {
		return 0, err
	}
	return floats.Min(rates), nil
}

// MaxRate returns the largest per-row rate in Gbps.
func MaxRate(r TestResult) (float64, error) {
	rates, err := primaryRates(r)
	if err != nil {
		return 0, err
	}
	return floats.Max(rates), nil
}

func primaryRates(r TestResult) ([]float64, error) {
	switch r.(type) {
	case *FIFOResult, *MemoryResult:
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownKind, r)
	}
	if r.Len() == 0 {
		return nil, fmt.Errorf("rate of %q: %w: no rows", r.Name(), ErrDivisionByZero)
	}
	return r.Rates(), nil
}

// Summarize computes the average, minimum and maximum rate of r.
func Summarize(r TestResult) (Summary, error) {
	avg, err := AvgRate(r)
	if err != nil {
		return Summary{}, err
	}
	rates, err := primaryRates(r)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Name:    r.Name(),
		Kind:    r.Kind(),
		Trials:  r.Len(),
		AvgGbps: avg,
		MinGbps: floats.Min(rates),
		MaxGbps: floats.Max(rates),
	}, nil
}
