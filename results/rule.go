package results

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule describes how the report files of one test category are found and labelled.
type Rule struct {
	// Name is the category name, e.g. "IntraL3 - Single FIFO".
	Name string
	// Pattern must match the beginning of a bare filename. Trailing characters are not constrained.
	Pattern string
	// Template is the row label template with positional placeholders.
	Template string
	// FilenameGroups selects capture groups of Pattern (0 is the first group) used as the
	// leading label arguments.
	FilenameGroups []int
	// RowFields are appended to the label arguments after the filename groups.
	RowFields []Field
	Kind      Kind
}

// Rules is an ordered category table. The order is the presentation order.
type Rules []Rule

// Names returns the category names in table order.
func (rules Rules) Names() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// compile validates the rule and compiles its pattern anchored at the start.
func (r Rule) compile() (*compiledRule, error) {
	if r.Kind != FIFO && r.Kind != Memory {
		return nil, fmt.Errorf("category %q: %w: %v", r.Name, ErrUnknownKind, r.Kind)
	}
	re, err := regexp.Compile(`^(?:` + r.Pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("category %q: invalid pattern: %w", r.Name, err)
	}
	for _, g := range r.FilenameGroups {
		if g < 0 || g >= re.NumSubexp() {
			return nil, fmt.Errorf("category %q: %w: group %d, pattern has %d groups", r.Name, ErrGroupIndex, g, re.NumSubexp())
		}
	}
	for _, f := range r.RowFields {
		if f.Kind() != r.Kind {
			return nil, fmt.Errorf("category %q: %w: %v is not a %v field", r.Name, ErrUnknownField, f, r.Kind)
		}
	}
	// validate the template with placeholder values
	if _, err := NewLabel(r.Template, make([]string, len(r.FilenameGroups)), r.RowFields); err != nil {
		return nil, fmt.Errorf("category %q: %w", r.Name, err)
	}
	return &compiledRule{Rule: r, re: re}, nil
}

// match reports whether filename matches the rule and returns the label for its rows.
func (cr *compiledRule) match(filename string) (Label, bool, error) {
	m := cr.re.FindStringSubmatch(filename)
	if m == nil {
		return Label{}, false, nil
	}
	groups := m[1:]
	args := make([]string, len(cr.FilenameGroups))
	for i, g := range cr.FilenameGroups {
		args[i] = groups[g]
	}
	lbl, err := NewLabel(cr.Template, args, cr.RowFields)
	return lbl, true, err
}

// CompileRules validates every rule. It fails on the first malformed rule.
func CompileRules(rules Rules) error {
	_, err := compileRules(rules)
	return err
}

func compileRules(rules Rules) ([]*compiledRule, error) {
	compiled := make([]*compiledRule, 0, len(rules))
	seen := make(map[string]bool)
	for _, r := range rules {
		if seen[r.Name] {
			return nil, fmt.Errorf("category %q is defined more than once", r.Name)
		}
		seen[r.Name] = true
		cr, err := r.compile()
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, cr)
	}
	return compiled, nil
}

// ParseKind parses a kind name (case insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(s) {
	case "FIFO":
		return FIFO, nil
	case "MEMORY":
		return Memory, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ParseField parses a column name such as "ServerCPU".
func ParseField(s string) (Field, error) {
	for f, c := range fieldColumns {
		if c == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown column %q", ErrUnknownField, s)
}
