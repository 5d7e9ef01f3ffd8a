package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// table is a parsed CSV report: header indices and raw records.
type table struct {
	columns map[string]int
	header  []string
	records [][]string
}

func readTable(rd io.Reader, kind Kind) (*table, error) {
	r := csv.NewReader(rd)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: report has no header", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	t := &table{columns: make(map[string]int, len(header))}
	for i, h := range header {
		h = strings.TrimSpace(h)
		t.header = append(t.header, h)
		t.columns[h] = i
	}
	for _, f := range kind.Fields() {
		if _, ok := t.columns[f.Column()]; !ok {
			return nil, fmt.Errorf("%w: %s report lacks %q", ErrMissingColumn, kind, f.Column())
		}
	}
	t.records, err = r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return t, nil
}

// rowParser converts the columns of one record, keeping the first error.
type rowParser struct {
	t   *table
	rec []string
	err error
}

func (p *rowParser) str(f Field) string {
	return strings.TrimSpace(p.rec[p.t.columns[f.Column()]])
}

func (p *rowParser) int(f Field) int {
	return int(p.int64(f))
}

func (p *rowParser) int64(f Field) int64 {
	if p.err != nil {
		return 0
	}
	s := p.str(f)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	// counts may be written in %e notation, e.g. 1.000000e+09
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) {
		p.err = fmt.Errorf("column %s: %q is not an integer", f.Column(), s)
		return 0
	}
	return int64(v)
}

func (p *rowParser) float(f Field) float64 {
	if p.err != nil {
		return 0
	}
	s := p.str(f)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.err = fmt.Errorf("column %s: %q is not a number", f.Column(), s)
	}
	return v
}

// extra returns the columns of rec that are not part of the kind's schema.
func (t *table) extra(rec []string, kind Kind) map[string]string {
	known := make(map[string]bool)
	for _, f := range kind.Fields() {
		known[f.Column()] = true
	}
	var extra map[string]string
	for i, h := range t.header {
		if known[h] || i >= len(rec) {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[h] = strings.TrimSpace(rec[i])
	}
	return extra
}

// ReadFIFO parses a FIFO report and labels each row with lbl.
// Derived rates are computed for every row.
func ReadFIFO(rd io.Reader, lbl Label) ([]FIFORow, error) {
	t, err := readTable(rd, FIFO)
	if err != nil {
		return nil, err
	}
	rows := make([]FIFORow, 0, len(t.records))
	for i, rec := range t.records {
		p := rowParser{t: t, rec: rec}
		row := FIFORow{
			ServerCPU:  p.int(ServerCPU),
			ClientCPU:  p.int(ClientCPU),
			ServerTime: p.float(ServerTime),
			ClientTime: p.float(ClientTime),
			BytesTx:    p.int64(BytesTx),
			BytesRx:    p.int64(BytesRx),
		}
		if p.err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, p.err)
		}
		row.Extra = t.extra(rec, FIFO)
		row.derive()
		row.Label = lbl.Format(row)
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadMemory parses a memory report and labels each row with lbl.
// Derived rates are computed for every row.
func ReadMemory(rd io.Reader, lbl Label) ([]MemoryRow, error) {
	t, err := readTable(rd, Memory)
	if err != nil {
		return nil, err
	}
	rows := make([]MemoryRow, 0, len(t.records))
	for i, rec := range t.records {
		p := rowParser{t: t, rec: rec}
		row := MemoryRow{
			CPU:             p.int(CPU),
			MemoryTime:      p.float(MemoryTime),
			BytesTransacted: p.int64(BytesTransacted),
			MemArrayBytes:   p.int64(MemArrayBytes),
		}
		if p.err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, p.err)
		}
		row.Extra = t.extra(rec, Memory)
		row.derive()
		row.Label = lbl.Format(row)
		rows = append(rows, row)
	}
	return rows, nil
}
