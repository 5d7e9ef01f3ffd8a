package results

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAvgRate(t *testing.T) {
	tests := []struct {
		name   string
		result TestResult
		want   float64
	}{
		{
			// 8 Gbps for 1s and 8/3 Gbps for 3s: the arithmetic mean would be 5.33
			name: "FIFOWeighsByTime",
			result: NewFIFOResult("fifo", []FIFORow{
				{BytesTx: 1e9, ServerTime: 1, BytesRx: 1e9, ClientTime: 1},
				{BytesTx: 1e9, ServerTime: 3, BytesRx: 1e9, ClientTime: 3},
			}),
			want: 4,
		},
		{
			name: "FIFOSingleRow",
			result: NewFIFOResult("fifo", []FIFORow{
				{BytesTx: 5e8, ServerTime: 0.5, BytesRx: 5e8, ClientTime: 0.5},
			}),
			want: 8,
		},
		{
			name: "Memory",
			result: NewMemoryResult("mem", []MemoryRow{
				{BytesTransacted: 1e9, MemoryTime: 0.5},
				{BytesTransacted: 1e9, MemoryTime: 1.5},
			}),
			want: 8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AvgRate(tt.result)
			if err != nil {
				t.Fatalf("AvgRate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AvgRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClientAvgRate(t *testing.T) {
	r := NewFIFOResult("fifo", []FIFORow{
		{BytesTx: 1e9, ServerTime: 1, BytesRx: 1e9, ClientTime: 2},
		{BytesTx: 1e9, ServerTime: 1, BytesRx: 1e9, ClientTime: 2},
	})
	got, err := ClientAvgRate(r)
	if err != nil {
		t.Fatalf("ClientAvgRate() error = %v", err)
	}
	if got != 4 {
		t.Errorf("ClientAvgRate() = %v, want 4", got)
	}
}

func TestSummarize(t *testing.T) {
	r := NewFIFOResult("fifo", []FIFORow{
		{BytesTx: 1e9, ServerTime: 3, BytesRx: 1e9, ClientTime: 3},
		{BytesTx: 1e9, ServerTime: 1, BytesRx: 1e9, ClientTime: 1},
	})
	got, err := Summarize(r)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	want := Summary{
		Name:    "fifo",
		Kind:    FIFO,
		Trials:  2,
		AvgGbps: 4,
		MinGbps: gbps(1e9, 3),
		MaxGbps: 8,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateEmpty(t *testing.T) {
	tests := []struct {
		name   string
		result TestResult
	}{
		{name: "NoFIFORows", result: NewFIFOResult("fifo", nil)},
		{name: "NoMemoryRows", result: NewMemoryResult("mem", nil)},
		{name: "ZeroTime", result: NewFIFOResult("fifo", []FIFORow{{BytesTx: 1, BytesRx: 1}})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := AvgRate(tt.result); !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("AvgRate() error = %v, want %v", err, ErrDivisionByZero)
			}
			if _, err := Summarize(tt.result); !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("Summarize() error = %v, want %v", err, ErrDivisionByZero)
			}
		})
	}
	for _, r := range []TestResult{NewFIFOResult("fifo", nil), NewMemoryResult("mem", nil)} {
		if _, err := MinRate(r); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("MinRate(%s) error = %v, want %v", r.Name(), err, ErrDivisionByZero)
		}
		if _, err := MaxRate(r); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("MaxRate(%s) error = %v, want %v", r.Name(), err, ErrDivisionByZero)
		}
	}
}

func TestAggregateUnknownKind(t *testing.T) {
	tests := []struct {
		name string
		fn   func(TestResult) error
	}{
		{name: "AvgRate", fn: func(r TestResult) error { _, err := AvgRate(r); return err }},
		{name: "MinRate", fn: func(r TestResult) error { _, err := MinRate(r); return err }},
		{name: "MaxRate", fn: func(r TestResult) error { _, err := MaxRate(r); return err }},
		{name: "Summarize", fn: func(r TestResult) error { _, err := Summarize(r); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(foreignResult{}); !errors.Is(err, ErrUnknownKind) {
				t.Errorf("%s() error = %v, want %v", tt.name, err, ErrUnknownKind)
			}
		})
	}
}
