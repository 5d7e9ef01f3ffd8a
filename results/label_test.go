package results

import (
	"errors"
	"testing"
)

func TestLabelFormat(t *testing.T) {
	row := FIFORow{ServerCPU: 5, ClientCPU: 17, ServerTime: 0.5}
	tests := []struct {
		name     string
		template string
		args     []string
		fields   []Field
		want     string
	}{
		{name: "FilenameAndRow", template: "L3:{0} CPUA:{1} CPUB:{2}", args: []string{"2"}, fields: []Field{ServerCPU, ClientCPU}, want: "L3:2 CPUA:5 CPUB:17"},
		{name: "TwoFilenameArgs", template: "L3A:{0} L3B:{1} CPU{2}->CPU{3}", args: []string{"2", "3"}, fields: []Field{ServerCPU, ClientCPU}, want: "L3A:2 L3B:3 CPU5->CPU17"},
		{name: "Reordered", template: "{2}<-{1} ({0})", args: []string{"x"}, fields: []Field{ServerCPU, ClientCPU}, want: "17<-5 (x)"},
		{name: "AutoNumbered", template: "{}-{}", args: []string{"a"}, fields: []Field{ServerTime}, want: "a-0.5"},
		{name: "Literal", template: "100% {{literal}}", want: "100% {literal}"},
		{name: "UnusedArgs", template: "only {1}", args: []string{"a"}, fields: []Field{ClientCPU}, want: "only 17"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lbl, err := NewLabel(tt.template, tt.args, tt.fields)
			if err != nil {
				t.Fatalf("NewLabel() error = %v", err)
			}
			if got := lbl.Format(row); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
			// formatting must not accumulate state between calls
			if got := lbl.Format(row); got != tt.want {
				t.Errorf("second Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0.0"},
		{in: 1, want: "1.0"},
		{in: 0.5, want: "0.5"},
		{in: -2, want: "-2.0"},
		{in: 1e9, want: "1000000000.0"},
		{in: 1.25e-5, want: "1.25e-05"},
		{in: 1e16, want: "1e+16"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}

	lbl, err := NewLabel("t={0}s", nil, []Field{ServerTime})
	if err != nil {
		t.Fatalf("NewLabel() error = %v", err)
	}
	if got := lbl.Format(FIFORow{ServerTime: 1}); got != "t=1.0s" {
		t.Errorf("Format() = %q, want %q", got, "t=1.0s")
	}
}

func TestLabelTemplateErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		numArgs  int
	}{
		{name: "OutOfRange", template: "{3}", numArgs: 3},
		{name: "Unclosed", template: "L3:{0", numArgs: 1},
		{name: "StraySingleBrace", template: "L3}", numArgs: 1},
		{name: "NotANumber", template: "{name}", numArgs: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLabel(tt.template, make([]string, tt.numArgs), nil)
			if !errors.Is(err, ErrTemplate) {
				t.Errorf("NewLabel(%q) error = %v, want %v", tt.template, err, ErrTemplate)
			}
		})
	}
}
