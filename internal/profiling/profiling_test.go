package profiling

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStart(t *testing.T) {
	dir := t.TempDir()
	p := Paths{
		CPU:    filepath.Join(dir, "cpuprofile"),
		Mem:    filepath.Join(dir, "memprofile"),
		Trace:  filepath.Join(dir, "trace"),
		Fgprof: filepath.Join(dir, "fgprofprofile"),
	}
	if !p.Enabled() {
		t.Fatal("Enabled() = false, want true")
	}
	stop, err := Start(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := stop(); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{p.CPU, p.Mem, p.Trace, p.Fgprof} {
		info, err := os.Stat(name)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", filepath.Base(name))
		}
	}
}

func TestStartNothing(t *testing.T) {
	if (Paths{}).Enabled() {
		t.Error("Enabled() = true, want false")
	}
	stop, err := Start(Paths{})
	if err != nil {
		t.Fatal(err)
	}
	if err := stop(); err != nil {
		t.Error(err)
	}
}

func TestStartBadPath(t *testing.T) {
	dir := t.TempDir()
	_, err := Start(Paths{
		CPU:   filepath.Join(dir, "cpuprofile"),
		Trace: filepath.Join(dir, "missing", "trace"),
	})
	if err == nil {
		t.Fatal("Start() succeeded, want error")
	}
	// the cpu profiler must have been stopped again
	stop, err := Start(Paths{CPU: filepath.Join(dir, "cpuprofile2")})
	if err != nil {
		t.Fatalf("cpu profiler still running: %v", err)
	}
	if err := stop(); err != nil {
		t.Error(err)
	}
}
