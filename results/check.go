package results

import (
	"fmt"

	"github.com/cyarp/commchar/logging"
)

const (
	// DefaultTolerance is the allowed server/client rate deviation for a single run.
	DefaultTolerance = 0.01
	// SweepTolerance is the allowed deviation for sweep points, which run fewer and shorter trials.
	SweepTolerance = 0.02
)

// OutOfTolerance reports whether the server and client rates of the row
// differ by more than the tolerance fraction. A ratio exactly at 1±tolerance is in range.
func (r FIFORow) OutOfTolerance(tolerance float64) bool {
	ratio := r.ServerGbps / r.ClientGbps
	return ratio > 1+tolerance || ratio < 1-tolerance
}

// Check compares the independently measured server and client rates of every
// FIFO result and logs a warning for each category where a row deviates by
// more than the tolerance. Memory results have no pair to compare and are
// skipped. Check does not alter the results; it reports whether any problem was found.
func Check(results Results, tolerance float64, logger logging.Logger) (problem bool, err error) {
	for _, name := range results.Names() {
		switch r := results[name].(type) {
		case *FIFOResult:
			for _, row := range r.rows {
				if row.OutOfTolerance(tolerance) {
					logger.Warnf("Server Gbps differs from Client Gbps by > %g%% [%s]", tolerance*100, name)
					problem = true
					break
				}
			}
		case *MemoryResult:
		default:
			return problem, fmt.Errorf("category %q: %w: %T", name, ErrUnknownKind, r)
		}
	}
	return problem, nil
}
