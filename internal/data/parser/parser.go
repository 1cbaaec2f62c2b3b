package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-perf-waterfall/internal/util"
)

// StdinPath makes LoadSnapshot read from standard input
const StdinPath = "-"

// ParseSnapshot decodes a metric snapshot: a single JSON object mapping
// "<entity>-<phase>" keys (and unrelated scalar metrics) to numbers.
func ParseSnapshot(data []byte) (map[string]float64, error) {
	var raw map[string]float64
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("invalid snapshot: expected a JSON object")
	}
	return raw, nil
}

// ReadSnapshot reads and decodes a snapshot from r
func ReadSnapshot(r io.Reader) (map[string]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// LoadSnapshot reads the snapshot file at path, or standard input for "-"
func LoadSnapshot(path string) (map[string]float64, error) {
	if path == StdinPath {
		util.LogDebug("Reading snapshot from stdin")
		return ReadSnapshot(os.Stdin)
	}

	path = util.ExpandPath(path)
	util.LogDebug("Loading snapshot", util.F("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	raw, err := ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	util.LogDebugf("Loaded %d metrics from %s", len(raw), path)
	return raw, nil
}
