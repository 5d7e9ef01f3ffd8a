package results

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	// written out of order to check that files are read in sorted order
	writeFile(t, dir, "run_intraL3_singleFifo_L3-3_L3CPUA-6_L3CPUB-7.csv",
		fifoHeader,
		"6,7,2,2,1000000000,1000000000",
	)
	writeFile(t, dir, "run_intraL3_singleFifo_L3-0_L3CPUA-1_L3CPUB-2.csv",
		fifoHeader,
		"1,2,1,2,1000000000,1000000000",
		"2,1,1,1,500000000,500000000",
	)
	writeFile(t, dir, "readme.txt", "not a report")

	got, err := Load(dir, DefaultRules())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]string{"IntraL3 - Single FIFO"}, got.Names()); diff != "" {
		t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
	}
	r, ok := got["IntraL3 - Single FIFO"].(*FIFOResult)
	if !ok {
		t.Fatalf("result has type %T, want *FIFOResult", got["IntraL3 - Single FIFO"])
	}
	want := []FIFORow{
		{ServerCPU: 1, ClientCPU: 2, ServerTime: 1, ClientTime: 2, BytesTx: 1e9, BytesRx: 1e9, ServerGbps: 8, ClientGbps: 4, Label: "L3:0 CPUA:1 CPUB:2"},
		{ServerCPU: 2, ClientCPU: 1, ServerTime: 1, ClientTime: 1, BytesTx: 5e8, BytesRx: 5e8, ServerGbps: 4, ClientGbps: 4, Label: "L3:0 CPUA:2 CPUB:1"},
		{ServerCPU: 6, ClientCPU: 7, ServerTime: 2, ClientTime: 2, BytesTx: 1e9, BytesRx: 1e9, ServerGbps: 4, ClientGbps: 4, Label: "L3:3 CPUA:6 CPUB:7"},
	}
	if diff := cmp.Diff(want, r.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMemory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "run_memory_read_singleCore_L3-1.csv",
		"CPU,MemoryTime,BytesTransacted,MemArrayBytes,MemoryDutyCycle",
		"4,2,2000000000,1048576,0.5",
	)
	got, err := Load(dir, DefaultRules())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	r, ok := got["Memory - Read Single Core"].(*MemoryResult)
	if !ok {
		t.Fatalf("result has type %T, want *MemoryResult", got["Memory - Read Single Core"])
	}
	want := []MemoryRow{{
		CPU:             4,
		MemoryTime:      2,
		BytesTransacted: 2e9,
		MemArrayBytes:   1048576,
		Gbps:            8,
		Label:           "L3:1 CPU4",
		Extra:           map[string]string{MemoryDutyCycle: "0.5"},
	}}
	if diff := cmp.Diff(want, r.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyDir(t *testing.T) {
	got, err := Load(t.TempDir(), DefaultRules())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() returned %d results, want none", len(got))
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "run_intraL3_singleL3_L3-0.csv", fifoHeader)
	got, err := Load(dir, DefaultRules())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	r, ok := got["IntraL3 - Single L3"]
	if !ok {
		t.Fatal("matched category is missing")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
	if _, err := AvgRate(r); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("AvgRate() error = %v, want %v", err, ErrDivisionByZero)
	}
}

func TestLoadPrefixMatch(t *testing.T) {
	rules := Rules{{
		Name:           "Single L3",
		Pattern:        `intraL3_singleL3_L3-([0-9]+)`,
		Template:       "L3:{0}",
		FilenameGroups: []int{0},
		Kind:           FIFO,
	}}
	tests := []struct {
		filename string
		want     bool
	}{
		{filename: "intraL3_singleL3_L3-1.csv", want: true},
		{filename: "intraL3_singleL3_L3-1.csv.bak", want: true},
		{filename: "run_intraL3_singleL3_L3-1.csv", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.filename, fifoHeader, "0,1,1,1,1,1")
			got, err := Load(dir, rules)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if _, ok := got["Single L3"]; ok != tt.want {
				t.Errorf("category present = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestLoadRuleErrors(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		want error
	}{
		{
			name: "GroupIndex",
			rule: Rule{Name: "bad", Pattern: `x-([0-9]+)`, Template: "{0}", FilenameGroups: []int{1}, Kind: FIFO},
			want: ErrGroupIndex,
		},
		{
			name: "NegativeGroupIndex",
			rule: Rule{Name: "bad", Pattern: `x-([0-9]+)`, Template: "{0}", FilenameGroups: []int{-1}, Kind: FIFO},
			want: ErrGroupIndex,
		},
		{
			name: "FieldOfOtherKind",
			rule: Rule{Name: "bad", Pattern: `x`, Template: "{0}", RowFields: []Field{CPU}, Kind: FIFO},
			want: ErrUnknownField,
		},
		{
			name: "UnknownKind",
			rule: Rule{Name: "bad", Pattern: `x`, Template: "x", Kind: Kind(42)},
			want: ErrUnknownKind,
		},
		{
			name: "TemplateArgs",
			rule: Rule{Name: "bad", Pattern: `x-([0-9]+)`, Template: "{0} {1}", FilenameGroups: []int{0}, Kind: FIFO},
			want: ErrTemplate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the directory does not exist, so the rule must be rejected before reading
			_, err := Load(filepath.Join(t.TempDir(), "missing"), Rules{tt.rule})
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadMalformedReport(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{name: "MissingColumn", lines: []string{"ServerCPU,ClientCPU,ServerTime,ClientTime,BytesTx", "0,1,1,1,1"}, want: ErrMissingColumn},
		{name: "Empty", lines: nil, want: ErrMissingColumn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "run_intraL3_singleL3_L3-0.csv", tt.lines...)
			if _, err := Load(dir, DefaultRules()); !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadBadNumber(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "run_intraL3_singleL3_L3-0.csv", fifoHeader, "0,1,fast,1,1,1")
	if _, err := Load(dir, DefaultRules()); err == nil {
		t.Error("Load() succeeded on a non-numeric time")
	}
}
