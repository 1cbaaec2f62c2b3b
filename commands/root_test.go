package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/testing/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores flag variables; cobra keeps them between executions
func resetFlags() {
	debug = false
	phasesFile = ""
	useSample = false
	outputFormat = "waterfall"
	width = 0
	zoom = 100
	colorMode = colorAuto
	details = false
	minimal = false
	phasesOutput = "text"
}

func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootSampleWaterfall(t *testing.T) {
	out, err := executeCommand(t, "", "--sample", "--width", "100", "--color", "never")
	require.NoError(t, err)

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "26 timelines")
	assert.Contains(t, out, "entryPoint")
	assert.Contains(t, out, "NativeAd")
}

func TestRootSampleJSON(t *testing.T) {
	out, err := executeCommand(t, "", "--sample", "-o", "json")
	require.NoError(t, err)

	var set model.TimelineSet
	require.NoError(t, sonic.Unmarshal([]byte(out), &set))
	assert.Equal(t, 26, set.Len())
	assert.InDelta(t, 1590.8700000145473, set.MaxValue, 1e-9)
	assert.Equal(t, "entryPoint", set.Timelines[0].Entity)
}

func TestRootFileCSV(t *testing.T) {
	path, err := fixtures.WriteSnapshot(t.TempDir(), "perf.json", fixtures.ChainSnapshot())
	require.NoError(t, err)

	out, err := executeCommand(t, "", path, "-o", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "entity,phase,relative,predecessor,raw,absolute,duration,left_pct,width_pct", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "X,loading,"))
	assert.True(t, strings.HasPrefix(lines[3], "X,script,"))
}

func TestRootStdinSummary(t *testing.T) {
	out, err := executeCommand(t, `{"X-loading": 100, "X-config": 10}`, "-", "-o", "summary")
	require.NoError(t, err)

	assert.Contains(t, out, "Page Load Waterfall Summary")
	assert.Contains(t, out, "Entities:        1")
}

func TestRootErrors(t *testing.T) {
	dir := t.TempDir()
	broken, err := fixtures.WriteSnapshot(dir, "broken.json", map[string]float64{"Z-script": 1})
	require.NoError(t, err)
	good, err := fixtures.WriteSnapshot(dir, "good.json", fixtures.ChainSnapshot())
	require.NoError(t, err)

	t.Run("missing_predecessor", func(t *testing.T) {
		_, err := executeCommand(t, "", broken)
		assert.ErrorIs(t, err, model.ErrMissingPredecessor)
	})

	t.Run("no_input", func(t *testing.T) {
		_, err := executeCommand(t, "")
		assert.ErrorContains(t, err, "snapshot file is required")
	})

	t.Run("sample_with_file", func(t *testing.T) {
		_, err := executeCommand(t, "", "--sample", good)
		assert.Error(t, err)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := executeCommand(t, "", filepath.Join(dir, "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad_color", func(t *testing.T) {
		_, err := executeCommand(t, "", "--sample", "--color", "sometimes")
		assert.ErrorContains(t, err, "invalid color mode")
	})

	t.Run("bad_output", func(t *testing.T) {
		_, err := executeCommand(t, "", "--sample", "-o", "xml")
		assert.ErrorContains(t, err, "unsupported output format")
	})

	t.Run("bad_phase_table", func(t *testing.T) {
		tablePath := filepath.Join(dir, "cycle.yaml")
		require.NoError(t, os.WriteFile(tablePath, []byte("a:\n  from: b\nb:\n  from: a\n"), 0644))
		_, err := executeCommand(t, "", "--sample", "--phases", tablePath)
		assert.ErrorIs(t, err, model.ErrCyclicPhase)
	})
}

func TestRootCustomPhaseTable(t *testing.T) {
	dir := t.TempDir()
	tablePath := filepath.Join(dir, "phases.yaml")
	require.NoError(t, os.WriteFile(tablePath, []byte("paint:\n  from: layout\n  color: magenta\n"), 0644))
	path, err := fixtures.WriteSnapshot(dir, "perf.json", map[string]float64{
		"Hero-layout": 40,
		"Hero-paint":  5,
	})
	require.NoError(t, err)

	out, err := executeCommand(t, "", path, "--phases", tablePath, "-o", "json")
	require.NoError(t, err)

	var set model.TimelineSet
	require.NoError(t, sonic.Unmarshal([]byte(out), &set))
	assert.Equal(t, 45.0, set.MaxValue)
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	for _, tt := range []struct {
		name     string
		mode     string
		expected bool
	}{
		{"always", colorAlways, true},
		{"never", colorNever, false},
		{"auto_not_a_terminal", colorAuto, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			colorMode = tt.mode
			defer resetFlags()
			assert.Equal(t, tt.expected, colorEnabled(&buf))
		})
	}
}

func TestRootZoomOutOfRange(t *testing.T) {
	out, err := executeCommand(t, "", "--sample", "--zoom", "1e15", "--width", "80", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "zoom 1000%")

	out, err = executeCommand(t, "", "--sample", "--zoom", "1", "--width", "80", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "zoom 10%")
}
