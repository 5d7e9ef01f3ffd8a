package results

import (
	"fmt"
	"strconv"
)

// Duty cycle columns written by harness builds that track how long each side
// was actively transacting.
const (
	ServerDutyCycle = "ServerDutyCycle"
	ClientDutyCycle = "ClientDutyCycle"
	MemoryDutyCycle = "MemoryDutyCycle"
)

// DutyCycleFields lists the duty cycle columns in presentation order.
var DutyCycleFields = []string{ServerDutyCycle, ClientDutyCycle, MemoryDutyCycle}

// DutyCycles returns the duty cycle columns present in r, in DutyCycleFields order.
// A column counts as present if the first row carries it.
func DutyCycles(r TestResult) []string {
	if r.Len() == 0 {
		return nil
	}
	extra := r.extra(0)
	var fields []string
	for _, f := range DutyCycleFields {
		if _, ok := extra[f]; ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// HasDutyCycle reports whether r carries the duty cycle column.
func HasDutyCycle(r TestResult, field string) bool {
	if r.Len() == 0 {
		return false
	}
	_, ok := r.extra(0)[field]
	return ok
}

// DutyCycleValues returns the values of a duty cycle column for every row.
func DutyCycleValues(r TestResult, field string) ([]float64, error) {
	values := make([]float64, r.Len())
	for i := range values {
		s, ok := r.extra(i)[field]
		if !ok {
			return nil, fmt.Errorf("%q row %d: %w: %s", r.Name(), i+1, ErrMissingColumn, field)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%q row %d: column %s: %q is not a number", r.Name(), i+1, field, s)
		}
		values[i] = v
	}
	return values, nil
}

// MeanDutyCycle returns the arithmetic mean and sample variance of a duty cycle column.
func MeanDutyCycle(r TestResult, field string) (mean, variance float64, err error) {
	values, err := DutyCycleValues(r, field)
	if err != nil {
		return 0, 0, err
	}
	if len(values) == 0 {
		return 0, 0, fmt.Errorf("mean %s of %q: %w: no rows", field, r.Name(), ErrDivisionByZero)
	}
	var w Welford
	for _, v := range values {
		w.Update(v)
	}
	mean, variance, _ = w.Get()
	return mean, variance, nil
}
