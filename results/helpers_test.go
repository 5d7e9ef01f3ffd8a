package results

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fifoHeader = "ServerCPU,ClientCPU,ServerTime,ClientTime,BytesTx,BytesRx"

// writeFile writes the lines to dir/name, creating dir if needed.
func writeFile(t *testing.T, dir, name string, lines ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func singleFifoRule() Rule {
	return DefaultRules()[0]
}

// foreignResult is a TestResult of neither known kind.
type foreignResult struct{}

func (foreignResult) Name() string                { return "foreign" }
func (foreignResult) Kind() Kind                  { return 0 }
func (foreignResult) Len() int                    { return 1 }
func (foreignResult) Labels() []string            { return []string{"x"} }
func (foreignResult) Rates() []float64            { return []float64{1} }
func (foreignResult) extra(int) map[string]string { return nil }
