package results

import (
	"github.com/aclements/go-moremath/stats"
)

// Spread describes the distribution of the per-row rates of a result.
type Spread struct {
	MedianGbps float64
	IQRGbps    float64
	StdDevGbps float64
}

// RateSpread returns the median, interquartile range and sample standard
// deviation of the per-row rates of r.
func RateSpread(r TestResult) (Spread, error) {
	rates, err := primaryRates(r)
	if err != nil {
		return Spread{}, err
	}
	sample := stats.Sample{Xs: rates}
	sample.Sort()
	return Spread{
		MedianGbps: sample.Quantile(0.5),
		IQRGbps:    sample.IQR(),
		StdDevGbps: sample.StdDev(),
	}, nil
}
