package results

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResultsOrdered(t *testing.T) {
	rules := DefaultRules()
	rs := Results{
		rules[3].Name: NewFIFOResult(rules[3].Name, nil),
		rules[0].Name: NewFIFOResult(rules[0].Name, nil),
		rules[7].Name: NewMemoryResult(rules[7].Name, nil),
	}
	var got []string
	for _, r := range rs.Ordered(rules) {
		got = append(got, r.Name())
	}
	want := []string{rules[0].Name, rules[3].Name, rules[7].Name}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ordered() mismatch (-want +got):\n%s", diff)
	}
}

func TestResultIsImmutable(t *testing.T) {
	rows := []FIFORow{{BytesTx: 1e9, ServerTime: 1, BytesRx: 1e9, ClientTime: 1, Label: "a"}}
	r := NewFIFOResult("fifo", rows)
	rows[0].Label = "changed"
	got := r.Rows()
	got[0].Label = "changed too"
	if l := r.Row(0).Label; l != "a" {
		t.Errorf("Row(0).Label = %q, want %q", l, "a")
	}
	if diff := cmp.Diff([]string{"a"}, r.Labels()); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseKindAndField(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Kind
	}{{"FIFO", FIFO}, {"memory", Memory}} {
		got, err := ParseKind(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = (%v, %v), want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseKind("CACHE"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(CACHE) error = %v, want %v", err, ErrUnknownKind)
	}
	for _, f := range append(append([]Field(nil), FIFOFields...), MemoryFields...) {
		got, err := ParseField(f.Column())
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = (%v, %v), want %v", f.Column(), got, err, f)
		}
	}
	if _, err := ParseField("Latency"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("ParseField(Latency) error = %v, want %v", err, ErrUnknownField)
	}
}
