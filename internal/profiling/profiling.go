// Package profiling starts and stops the Go profilers selected on the command line.
package profiling

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/felixge/fgprof"
	"go.uber.org/multierr"
)

// Paths holds the output files of the profilers. An empty path disables the profiler.
type Paths struct {
	CPU    string
	Mem    string
	Trace  string
	Fgprof string
}

// Enabled reports whether any profiler is selected.
func (p Paths) Enabled() bool {
	return p != Paths{}
}

// Start starts the selected profilers. The returned function stops them,
// writes the heap profile and closes every output file.
func Start(p Paths) (stop func() error, err error) {
	var stops []func() error
	stopAll := func() (err error) {
		for i := len(stops) - 1; i >= 0; i-- {
			err = multierr.Append(err, stops[i]())
		}
		return err
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, stopAll())
		}
	}()

	if p.CPU != "" {
		f, err := os.Create(p.CPU)
		if err != nil {
			return nil, err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return nil, multierr.Append(err, f.Close())
		}
		stops = append(stops, func() error {
			pprof.StopCPUProfile()
			return f.Close()
		})
	}

	if p.Fgprof != "" {
		f, err := os.Create(p.Fgprof)
		if err != nil {
			return nil, err
		}
		fgprofStop := fgprof.Start(f, fgprof.FormatPprof)
		stops = append(stops, func() error {
			return multierr.Append(fgprofStop(), f.Close())
		})
	}

	if p.Trace != "" {
		f, err := os.Create(p.Trace)
		if err != nil {
			return nil, err
		}
		if err := trace.Start(f); err != nil {
			return nil, multierr.Append(err, f.Close())
		}
		stops = append(stops, func() error {
			trace.Stop()
			return f.Close()
		})
	}

	return func() error {
		err := stopAll()
		if p.Mem != "" {
			err = multierr.Append(err, writeHeapProfile(p.Mem))
		}
		return err
	}, nil
}

func writeHeapProfile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()
	runtime.GC() // get up-to-date statistics
	return pprof.WriteHeapProfile(f)
}
