package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-perf-waterfall/internal/core/phase"
	"github.com/penwyp/go-perf-waterfall/internal/presentation/layout"
	"github.com/penwyp/go-perf-waterfall/internal/util"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var phasesOutput string

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Print the effective phase table",
	Long: `Prints every relative phase with the phase it is measured from, the absolute
phase its chain ends at, the chain depth and the bar color.

The json and yaml outputs can be edited and passed back with --phases.`,
	Args: cobra.NoArgs,
	RunE: runPhases,
}

func init() {
	rootCmd.AddCommand(phasesCmd)

	phasesCmd.Flags().StringVarP(&phasesOutput, "output", "o", "text",
		"Output format (text, json, yaml)")
}

func runPhases(cmd *cobra.Command, args []string) error {
	initLogging()
	defer util.CloseLogger()

	if err := validateColorMode(); err != nil {
		return err
	}

	table, err := loadTable()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch phasesOutput {
	case "text":
		return printPhaseTable(out, table, colorEnabled(out))
	case "json":
		data, err := sonic.ConfigStd.MarshalIndent(tableSpecs(table), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(tableSpecs(table)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s (valid: text, json, yaml)", phasesOutput)
	}
}

func tableSpecs(table *phase.Table) map[string]phase.Spec {
	specs := make(map[string]phase.Spec, table.Len())
	for _, name := range table.Phases() {
		spec, _ := table.Lookup(name)
		specs[name] = spec
	}
	return specs
}

func printPhaseTable(w io.Writer, table *phase.Table, color bool) error {
	sizer := layout.Sizer{}
	headers := []string{"Phase", "From", "Base", "Depth", "Color"}
	rows := [][]string{headers}
	for _, name := range table.Phases() {
		spec, _ := table.Lookup(name)
		rows = append(rows, []string{
			name,
			spec.Predecessor,
			table.Base(name),
			strconv.Itoa(table.Depth(name)),
			spec.Color,
		})
	}

	widths := make([]int, len(headers))
	for _, row := range rows {
		for i, cell := range row {
			if cw := util.GetDisplayWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for i, row := range rows {
		line := ""
		for j, cell := range row {
			padded := cell
			if j < len(row)-1 {
				padded = sizer.PadString(cell, widths[j], true)
			}
			switch {
			case i == 0:
				padded = util.Styled(padded, color, util.ColorBold)
			case j == len(row)-1:
				padded = util.Colorize(padded, cell, color)
			}
			if j > 0 {
				line += "  "
			}
			line += padded
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
