package results

import (
	"math"
	"strconv"
	"strings"
)

// gbps converts a byte count transferred over the given number of seconds to Gbit/s.
func gbps(bytes float64, seconds float64) float64 {
	return bytes / seconds * 8 / 1.0e9
}

// FIFORow is one FIFO trial: a server core producing into a queue that a client core drains.
type FIFORow struct {
	ServerCPU  int
	ClientCPU  int
	ServerTime float64 // seconds
	ClientTime float64 // seconds
	BytesTx    int64
	BytesRx    int64

	ServerGbps float64
	ClientGbps float64

	Label string
	// Extra holds columns outside the FIFO schema, such as duty cycles, keyed by header.
	Extra map[string]string
}

// Value returns the string form of a FIFO field. The second result is false
// if f is not a FIFO field.
func (r FIFORow) Value(f Field) (string, bool) {
	switch f {
	case ServerCPU:
		return strconv.Itoa(r.ServerCPU), true
	case ClientCPU:
		return strconv.Itoa(r.ClientCPU), true
	case ServerTime:
		return formatFloat(r.ServerTime), true
	case ClientTime:
		return formatFloat(r.ClientTime), true
	case BytesTx:
		return strconv.FormatInt(r.BytesTx, 10), true
	case BytesRx:
		return strconv.FormatInt(r.BytesRx, 10), true
	}
	return "", false
}

func (r *FIFORow) derive() {
	r.ServerGbps = gbps(float64(r.BytesTx), r.ServerTime)
	r.ClientGbps = gbps(float64(r.BytesRx), r.ClientTime)
}

// MemoryRow is one memory bandwidth trial on a single core.
type MemoryRow struct {
	CPU             int
	MemoryTime      float64 // seconds
	BytesTransacted int64
	MemArrayBytes   int64

	Gbps float64

	Label string
	Extra map[string]string
}

// Value returns the string form of a memory field. The second result is false
// if f is not a memory field.
func (r MemoryRow) Value(f Field) (string, bool) {
	switch f {
	case CPU:
		return strconv.Itoa(r.CPU), true
	case MemoryTime:
		return formatFloat(r.MemoryTime), true
	case BytesTransacted:
		return strconv.FormatInt(r.BytesTransacted, 10), true
	case MemArrayBytes:
		return strconv.FormatInt(r.MemArrayBytes, 10), true
	}
	return "", false
}

func (r *MemoryRow) derive() {
	r.Gbps = gbps(float64(r.BytesTransacted), r.MemoryTime)
}

// formatFloat prints the shortest decimal form of v. Integral values keep a
// trailing ".0"; magnitudes outside [1e-4, 1e16) use exponent form.
func formatFloat(v float64) string {
	if a := math.Abs(v); math.IsNaN(v) || math.IsInf(v, 0) || (a != 0 && (a < 1e-4 || a >= 1e16)) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
