package results

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/exp/slices"
)

// Load scans dir for report files and returns the results of every category
// in rules that matched at least one file. Files are visited in sorted
// filename order and rows are kept in file order. Files that match no rule
// are ignored. All rules are validated before any file is read.
func Load(dir string, rules Rules) (Results, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read report directory: %w", err)
	}
	// os.ReadDir sorts by filename, but keep the order explicit.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() || e.Type()&os.ModeSymlink != 0 {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)

	var (
		fifoRows = make(map[string][]FIFORow)
		memRows  = make(map[string][]MemoryRow)
	)
	for _, name := range names {
		path := filepath.Join(dir, name)
		for _, rule := range compiled {
			lbl, ok, err := rule.match(name)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			if !ok {
				continue
			}
			if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
				// dangling links and links to directories are not reports
				continue
			}
			switch rule.Kind {
			case FIFO:
				rows, err := readFile(path, lbl, ReadFIFO)
				if err != nil {
					return nil, err
				}
				fifoRows[rule.Name] = append(fifoRows[rule.Name], rows...)
			case Memory:
				rows, err := readFile(path, lbl, ReadMemory)
				if err != nil {
					return nil, err
				}
				memRows[rule.Name] = append(memRows[rule.Name], rows...)
			default:
				return nil, fmt.Errorf("category %q: %w: %v", rule.Name, ErrUnknownKind, rule.Kind)
			}
		}
	}

	results := make(Results)
	for name, rows := range fifoRows {
		results[name] = &FIFOResult{name: name, rows: rows}
	}
	for name, rows := range memRows {
		results[name] = &MemoryResult{name: name, rows: rows}
	}
	return results, nil
}

func readFile[R any](path string, lbl Label, read func(io.Reader, Label) ([]R, error)) (rows []R, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	rows, err = read(f, lbl)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
