// Package test builds subtest names from parameter names and values.
package test

import (
	"fmt"
	"strings"
)

// Name joins fields and values as field=value with "/" between them.
// Zero numbers, empty strings and false are left out; a true bool gives the bare field name.
func Name(fields []string, values ...any) string {
	if len(fields) != len(values) {
		panic("fields and values must have the same length")
	}
	parts := make([]string, 0, len(fields))
	for i, f := range fields {
		switch x := values[i].(type) {
		case string:
			if x != "" {
				parts = append(parts, f+"="+x)
			}
		case int:
			if x != 0 {
				parts = append(parts, fmt.Sprintf("%s=%d", f, x))
			}
		case int64:
			if x != 0 {
				parts = append(parts, fmt.Sprintf("%s=%d", f, x))
			}
		case float64:
			if x != 0 {
				parts = append(parts, fmt.Sprintf("%s=%g", f, x))
			}
		case bool:
			if x {
				parts = append(parts, f)
			}
		default:
			parts = append(parts, fmt.Sprintf("%s=%v", f, x))
		}
	}
	return strings.Join(parts, "/")
}
