package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-perf-waterfall/internal/core/phase"
	"github.com/penwyp/go-perf-waterfall/internal/util"
	"gopkg.in/yaml.v3"
)

// PhaseTableFormat selects the decoder for a phase table file
type PhaseTableFormat string

const (
	FormatJSON PhaseTableFormat = "json"
	FormatYAML PhaseTableFormat = "yaml"
)

// DetectPhaseTableFormat picks YAML for .yaml/.yml files and JSON otherwise
func DetectPhaseTableFormat(path string) PhaseTableFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParsePhaseTable decodes a phase table document of the form
//
//	config:
//	  from: loading
//	  color: red
//
// (or its JSON equivalent) and validates it.
func ParsePhaseTable(data []byte, format PhaseTableFormat) (*phase.Table, error) {
	var specs map[string]phase.Spec

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &specs); err != nil {
			return nil, fmt.Errorf("invalid phase table: %w", err)
		}
	case FormatJSON:
		if err := sonic.Unmarshal(data, &specs); err != nil {
			return nil, fmt.Errorf("invalid phase table: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported phase table format: %s", format)
	}

	for name, spec := range specs {
		if spec.Color != "" && !util.IsKnownColor(spec.Color) {
			util.LogWarnf("Phase %s uses unknown color %q, falling back to default", name, spec.Color)
		}
	}

	return phase.NewTable(specs)
}

// LoadPhaseTable reads a phase table file. An empty path returns the default table.
func LoadPhaseTable(path string) (*phase.Table, error) {
	if path == "" {
		return phase.Default(), nil
	}

	path = util.ExpandPath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read phase table %s: %w", path, err)
	}

	table, err := ParsePhaseTable(data, DetectPhaseTableFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	util.LogDebugf("Loaded %d relative phases from %s", table.Len(), path)
	return table, nil
}
