package main

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mark3labs/investflow/internal/flow"
	"github.com/mark3labs/investflow/internal/tui/theme"
	"github.com/spf13/cobra"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Print the wizard's step graph",
	Long:  `Print every step in order with its progress value and its forward and back edges.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), renderSteps())
	},
}

// renderSteps renders the step graph as a table.
func renderSteps() string {
	t := theme.Current()

	rows := make([][]string, 0, len(flow.Steps()))
	for _, s := range flow.Steps() {
		next, _ := flow.Next(s)
		prev, _ := flow.Previous(s)
		rows = append(rows, []string{
			strconv.Itoa(s.Index() + 1),
			string(s),
			s.Title(),
			strconv.Itoa(flow.ProgressFor(s)) + "%",
			orNone(next),
			orNone(prev),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgSurface2))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("#", "STEP", "TITLE", "PROGRESS", "NEXT", "BACK").
		Rows(rows...).
		String()
}

func orNone(s flow.Step) string {
	if s == "" {
		return "-"
	}
	return string(s)
}
