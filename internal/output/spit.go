// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/invctl/invctl/internal/config"
)

// Spit sorts and renders the record set per the command's --sort and --output
// flags. Output is written to w; if w is nil, os.Stdout is used. The columns
// slice fixes which fields are emitted for text output and in what order;
// json and yaml emit whole records.
func Spit(records []map[string]string, columns []string, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	SortDataset(records, cmd.String("sort"))

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.Marshal(records)
		if err != nil {
			log.Errorf("Spit json marshal: %v", err)
			return
		}
		fmt.Fprintln(w, string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(records)
		if err != nil {
			log.Errorf("Spit yaml marshal: %v", err)
			return
		}
		_, _ = w.Write(yamlOutput)
	default:
		TableWriter(records, columns, cmd, w)
	}
}

// TableWriter renders the record set in a tabular form honoring color and
// titles options. Output is written to w. If w is nil, os.Stdout is used.
func TableWriter(
	records []map[string]string,
	columns []string,
	cmd *cli.Command,
	w io.Writer) {

	if w == nil {
		w = os.Stdout
	}

	// We return early if there are no results to display.
	if len(records) == 0 {
		return
	}

	// We initialize the table styles.
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	// And then color styles if --color is present and we're on a terminal.
	if cmd.Bool("color") && isTerminal(w) {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	// We build the table rows from the record set.
	var rows [][]string
	for _, rec := range records {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			value := rec[column]
			if value == "" {
				value = "-"
			}
			row = append(row, value)
		}
		rows = append(rows, row)
	}

	// We render the header if present.
	if cmd.Metadata["header"] != nil {
		fmt.Fprintln(w, headerStyle.Render(cmd.Metadata["header"].(string)))
	}

	// We configure the table with padding and styles.
	pad, _ := config.GetInt("padding", 2)
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	// We add column headers if titles are enabled.
	if cmd.Bool("titles") {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(columns...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)

	// We render the footer if present.
	if cmd.Metadata["footer"] != nil {
		fmt.Fprintln(w, headerStyle.Render(cmd.Metadata["footer"].(string)))
	}
}

// getColors returns the header, even-row and odd-row colors from the named
// config key (a three-entry list of color specs), falling back to a stock
// palette.
func getColors(key string) (color.Color, color.Color, color.Color) {
	specs, err := config.GetStringSlice(key, []string{"33", "252", "245"})
	if err != nil || len(specs) != 3 {
		specs = []string{"33", "252", "245"}
	}
	return lipgloss.Color(specs[0]), lipgloss.Color(specs[1]), lipgloss.Color(specs[2])
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
