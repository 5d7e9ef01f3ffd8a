package test

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		fields []string
		values []any
		want   string
	}{
		{fields: []string{"start", "end"}, values: []any{4, 13}, want: "start=4/end=13"},
		{fields: []string{"start", "end"}, values: []any{0, 13}, want: "end=13"},
		{fields: []string{"target", "tol"}, values: []any{int64(1e9), 0.02}, want: "target=1000000000/tol=0.02"},
		{fields: []string{"dir", "sweep"}, values: []any{"", true}, want: "sweep"},
		{fields: []string{"dir", "sweep"}, values: []any{"out", false}, want: "dir=out"},
		{fields: []string{"sizes"}, values: []any{[]int{1, 2}}, want: "sizes=[1 2]"},
	}
	for _, tt := range tests {
		if got := Name(tt.fields, tt.values...); got != tt.want {
			t.Errorf("Name(%v, %v) = %q, want %q", tt.fields, tt.values, got, tt.want)
		}
	}
}

func TestNameMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Name() did not panic")
		}
	}()
	Name([]string{"a", "b"}, 1)
}
