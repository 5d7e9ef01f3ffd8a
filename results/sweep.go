package results

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/cyarp/commchar/logging"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SweepDirPattern matches the beginning of a sweep point directory name and
// captures its block size in bytes.
var SweepDirPattern = regexp.MustCompile(`^blkSizeBytes([0-9]+)`)

// SweepDirName returns the directory name of the sweep point with the given block size.
func SweepDirName(blockSizeBytes int) string {
	return "blkSizeBytes" + strconv.Itoa(blockSizeBytes)
}

// SweepPoint holds the results measured at one block size.
type SweepPoint struct {
	BlockSizeBytes int
	Results        Results
}

// Sweep holds the results of a block size sweep. BlockSizesBytes is strictly
// ascending and Points[i] belongs to BlockSizesBytes[i]. A category may be
// missing from some points.
type Sweep struct {
	BlockSizesBytes []int
	Points          []SweepPoint
}

// LoadSweep loads every blkSizeBytes<N> sub-directory of root with Load and
// checks each point with the given tolerance. Directories that do not carry a
// block size are ignored. Two directories with the same block size are an
// error, reported before any point is loaded. Points are loaded one at a time
// in ascending block size order.
func LoadSweep(root string, rules Rules, tolerance float64, logger logging.Logger) (*Sweep, error) {
	// fail on malformed rules even if root holds no sweep points
	if err := CompileRules(rules); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read sweep directory: %w", err)
	}

	dirs := make(map[int]string)
	for _, e := range entries {
		m := SweepDirPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		// follow links to directories
		if info, err := os.Stat(filepath.Join(root, e.Name())); err != nil || !info.IsDir() {
			continue
		}
		blkSize, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid block size: %w", e.Name(), err)
		}
		if other, ok := dirs[blkSize]; ok {
			return nil, fmt.Errorf("%s and %s: %w: %d", other, e.Name(), ErrDuplicateBlockSize, blkSize)
		}
		dirs[blkSize] = e.Name()
	}

	sweep := &Sweep{BlockSizesBytes: maps.Keys(dirs)}
	slices.Sort(sweep.BlockSizesBytes)
	sweep.Points = make([]SweepPoint, 0, len(sweep.BlockSizesBytes))
	for _, blkSize := range sweep.BlockSizesBytes {
		res, err := Load(filepath.Join(root, dirs[blkSize]), rules)
		if err != nil {
			return nil, err
		}
		if _, err := Check(res, tolerance, logger); err != nil {
			return nil, err
		}
		logger.Infof("Loaded and checked %s", dirs[blkSize])
		sweep.Points = append(sweep.Points, SweepPoint{BlockSizeBytes: blkSize, Results: res})
	}
	return sweep, nil
}

// Categories returns the names of the rules that have data in at least one point, in rule order.
func (s *Sweep) Categories(rules Rules) []string {
	var names []string
	for _, rule := range rules {
		for _, p := range s.Points {
			if _, ok := p.Results[rule.Name]; ok {
				names = append(names, rule.Name)
				break
			}
		}
	}
	return names
}

// Series returns one (block size, metric) pair per point that has rows for the
// category. Other points are skipped, so the series may be shorter than BlockSizesBytes.
func (s *Sweep) Series(category string, metric func(TestResult) (float64, error)) (xs, ys []float64, err error) {
	for _, p := range s.Points {
		r, ok := p.Results[category]
		if !ok || r.Len() == 0 {
			continue
		}
		y, err := metric(r)
		if err != nil {
			return nil, nil, fmt.Errorf("block size %d: %w", p.BlockSizeBytes, err)
		}
		xs = append(xs, float64(p.BlockSizeBytes))
		ys = append(ys, y)
	}
	return xs, ys, nil
}

// Scatter returns every per-row rate of the category paired with the block
// size of its point.
func (s *Sweep) Scatter(category string) (xs, ys []float64) {
	for _, p := range s.Points {
		r, ok := p.Results[category]
		if !ok {
			continue
		}
		for _, rate := range r.Rates() {
			xs = append(xs, float64(p.BlockSizeBytes))
			ys = append(ys, rate)
		}
	}
	return xs, ys
}

// DutyCycleScatter is Scatter for a duty cycle column. Points whose result
// lacks the column are skipped.
func (s *Sweep) DutyCycleScatter(category, field string) (xs, ys []float64, err error) {
	for _, p := range s.Points {
		r, ok := p.Results[category]
		if !ok || !HasDutyCycle(r, field) {
			continue
		}
		values, err := DutyCycleValues(r, field)
		if err != nil {
			return nil, nil, fmt.Errorf("block size %d: %w", p.BlockSizeBytes, err)
		}
		for _, v := range values {
			xs = append(xs, float64(p.BlockSizeBytes))
			ys = append(ys, v)
		}
	}
	return xs, ys, nil
}

// DutyCycles returns the duty cycle columns carried by the category in any point.
func (s *Sweep) DutyCycles(category string) []string {
	present := make(map[string]bool)
	for _, p := range s.Points {
		if r, ok := p.Results[category]; ok {
			for _, f := range DutyCycles(r) {
				present[f] = true
			}
		}
	}
	var fields []string
	for _, f := range DutyCycleFields {
		if present[f] {
			fields = append(fields, f)
		}
	}
	return fields
}
