package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/cyarp/commchar/results"
)

//go:embed schema.cue
var schemaFile string

type category struct {
	Name           string   `json:"name"`
	Pattern        string   `json:"pattern"`
	Template       string   `json:"template"`
	FilenameGroups []int    `json:"filenameGroups"`
	RowFields      []string `json:"rowFields"`
	Kind           string   `json:"kind"`
}

// LoadRules loads a category table from a cue file. The file is validated
// against the schema embedded in the binary and the resulting rules are compiled,
// so a table returned without error is ready for results.Load.
func LoadRules(filename string) (results.Rules, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return parseRules(filename, b)
}

func parseRules(filename string, src []byte) (results.Rules, error) {
	ctx := cuecontext.New()
	path := cue.ParsePath("categories")
	schema := ctx.CompileString(schemaFile).LookupPath(path)
	if schema.Err() != nil {
		return nil, schema.Err()
	}
	cfg := ctx.CompileBytes(src, cue.Filename(filename)).LookupPath(path)
	if cfg.Err() != nil {
		return nil, cfg.Err()
	}
	unified := schema.Unify(cfg)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, err
	}
	var cats []category
	if err := unified.Decode(&cats); err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, fmt.Errorf("%s: no categories defined", filename)
	}
	rules := make(results.Rules, 0, len(cats))
	for _, c := range cats {
		kind, err := results.ParseKind(c.Kind)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", c.Name, err)
		}
		rule := results.Rule{
			Name:           c.Name,
			Pattern:        c.Pattern,
			Template:       c.Template,
			FilenameGroups: c.FilenameGroups,
			Kind:           kind,
		}
		for _, col := range c.RowFields {
			f, err := results.ParseField(col)
			if err != nil {
				return nil, fmt.Errorf("category %q: %w", c.Name, err)
			}
			rule.RowFields = append(rule.RowFields, f)
		}
		rules = append(rules, rule)
	}
	if err := results.CompileRules(rules); err != nil {
		return nil, err
	}
	return rules, nil
}
