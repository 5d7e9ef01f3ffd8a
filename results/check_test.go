package results

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cyarp/commchar/logging"
)

func TestOutOfTolerance(t *testing.T) {
	// 156250000 bytes in 1s is exactly 1.25 Gbps, 125000000 bytes in 1s is 1 Gbps.
	tests := []struct {
		name    string
		bytesTx int64
		bytesRx int64
		want    bool
	}{
		{name: "Equal", bytesTx: 125000000, bytesRx: 125000000, want: false},
		{name: "AtUpperBound", bytesTx: 156250000, bytesRx: 125000000, want: false},
		{name: "AboveUpperBound", bytesTx: 156250001, bytesRx: 125000000, want: true},
		{name: "BelowLowerBound", bytesTx: 62500000, bytesRx: 125000000, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := FIFORow{BytesTx: tt.bytesTx, BytesRx: tt.bytesRx, ServerTime: 1, ClientTime: 1}
			row.derive()
			if got := row.OutOfTolerance(0.25); got != tt.want {
				t.Errorf("OutOfTolerance(0.25) = %v, want %v (ratio %v)", got, tt.want, row.ServerGbps/row.ClientGbps)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithDest(&buf, "results")

	results := Results{
		"Good": NewFIFOResult("Good", []FIFORow{
			{BytesTx: 1e9, ServerTime: 1, BytesRx: 1e9, ClientTime: 1},
		}),
		"Skewed": NewFIFOResult("Skewed", []FIFORow{
			{BytesTx: 1e9, ServerTime: 1, BytesRx: 1e9, ClientTime: 1},
			{BytesTx: 1e9, ServerTime: 1, BytesRx: 1e9, ClientTime: 2},
			{BytesTx: 1e9, ServerTime: 1, BytesRx: 1e9, ClientTime: 3},
		}),
		"Memory": NewMemoryResult("Memory", []MemoryRow{
			{BytesTransacted: 1e9, MemoryTime: 1},
		}),
	}
	problem, err := Check(results, DefaultTolerance, logger)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !problem {
		t.Error("Check() found no problem")
	}
	out := buf.String()
	if n := strings.Count(out, "Server Gbps differs from Client Gbps by > 1% [Skewed]"); n != 1 {
		t.Errorf("expected one warning for Skewed, got %d in:\n%s", n, out)
	}
	if strings.Contains(out, "[Good]") || strings.Contains(out, "[Memory]") {
		t.Errorf("unexpected warning in:\n%s", out)
	}
	// the results are left untouched
	if results["Skewed"].Len() != 3 {
		t.Errorf("Check() changed the results")
	}
}

func TestCheckNoProblem(t *testing.T) {
	results := Results{
		"Good": NewFIFOResult("Good", []FIFORow{
			{BytesTx: 1e9, ServerTime: 1, BytesRx: 1e9, ClientTime: 1},
		}),
	}
	problem, err := Check(results, DefaultTolerance, logging.Nop())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if problem {
		t.Error("Check() reported a problem")
	}
}

func TestCheckUnknownKind(t *testing.T) {
	results := Results{
		"Good": NewFIFOResult("Good", []FIFORow{
			{BytesTx: 1e9, ServerTime: 1, BytesRx: 1e9, ClientTime: 1},
		}),
		"Foreign": foreignResult{},
	}
	if _, err := Check(results, DefaultTolerance, logging.Nop()); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Check() error = %v, want %v", err, ErrUnknownKind)
	}
}
