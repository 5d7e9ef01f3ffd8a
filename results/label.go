package results

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldValuer is implemented by report rows.
type FieldValuer interface {
	Value(f Field) (string, bool)
}

// Label formats row labels from a template with positional placeholders such
// as "L3:{0} CPU{1}->CPU{2}". The arguments are the captured filename groups
// followed by the row fields, in that order. A Label is immutable.
type Label struct {
	format string
	// verbs is the number of placeholders; fmt flags unused arguments when it is zero.
	verbs  int
	args   []any
	fields []Field
}

// NewLabel returns a Label that substitutes the filename values and then the
// row fields into the template.
func NewLabel(template string, filenameArgs []string, fields []Field) (Label, error) {
	numArgs := len(filenameArgs) + len(fields)
	format, verbs, err := convertTemplate(template, numArgs)
	if err != nil {
		return Label{}, err
	}
	args := make([]any, len(filenameArgs), numArgs)
	for i, a := range filenameArgs {
		args[i] = a
	}
	return Label{
		format: format,
		verbs:  verbs,
		args:   args,
		fields: append([]Field(nil), fields...),
	}, nil
}

// Format returns the label of the given row.
func (l Label) Format(row FieldValuer) string {
	if l.verbs == 0 {
		return strings.ReplaceAll(l.format, "%%", "%")
	}
	args := make([]any, len(l.args), len(l.args)+len(l.fields))
	copy(args, l.args)
	for _, f := range l.fields {
		v, _ := row.Value(f)
		args = append(args, v)
	}
	return fmt.Sprintf(l.format, args...)
}

// convertTemplate rewrites {n} and {} placeholders into fmt verbs with
// explicit argument indexes. Doubled braces are literal braces.
func convertTemplate(template string, numArgs int) (format string, verbs int, err error) {
	var (
		b    strings.Builder
		auto int
	)
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '%':
			b.WriteString("%%")
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", 0, fmt.Errorf("%w: single '}' in %q", ErrTemplate, template)
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return "", 0, fmt.Errorf("%w: unclosed '{' in %q", ErrTemplate, template)
			}
			ph := template[i+1 : i+end]
			idx := auto
			if ph == "" {
				auto++
			} else {
				n, err := strconv.Atoi(ph)
				if err != nil || n < 0 {
					return "", 0, fmt.Errorf("%w: bad placeholder {%s} in %q", ErrTemplate, ph, template)
				}
				idx = n
			}
			if idx >= numArgs {
				return "", 0, fmt.Errorf("%w: placeholder {%d} in %q but only %d arguments", ErrTemplate, idx, template, numArgs)
			}
			fmt.Fprintf(&b, "%%[%d]s", idx+1)
			verbs++
			i += end
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), verbs, nil
}
