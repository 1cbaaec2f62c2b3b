package fixtures

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-perf-waterfall/internal/data/sample"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// StripANSI removes terminal escape sequences so rendered output can be compared
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// ChainSnapshot is one entity with a loading -> config -> script chain plus a scalar counter.
// Resolves to loading=100, config=110, script=112.
func ChainSnapshot() map[string]float64 {
	return map[string]float64{
		"X-loading": 100,
		"X-config":  10,
		"X-script":  2,
		"TTPV":      93,
	}
}

// TwoEntitySnapshot has Y starting before X while X ends later
func TwoEntitySnapshot() map[string]float64 {
	return map[string]float64{
		"X-loading":    10,
		"X-config":     15,
		"X-script":     25,
		"Y-connecting": 5,
		"Y-connect":    25,
	}
}

// WriteSnapshot writes a metric map as a JSON object and returns its path
func WriteSnapshot(dir, name string, snapshot map[string]float64) (string, error) {
	data, err := sonic.ConfigStd.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ReferenceSnapshot is the built-in sample page-load trace
func ReferenceSnapshot() map[string]float64 {
	return sample.Snapshot()
}
