package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/zotcurve/internal/charts"
)

func newShowCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the grade distribution of one class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid class id %q", args[0])
			}
			dataset, err := loadDataset(cmd, root)
			if err != nil {
				return fmt.Errorf("load grades: %w", err)
			}
			record, ok := dataset.FindByID(id)
			if !ok {
				return fmt.Errorf("class %d not found", id)
			}

			chart := charts.New(record)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, chart.Title)
			fmt.Fprintln(out, chart.Subtitle)

			tw := table.NewWriter()
			tw.SetOutputMirror(out)
			tw.AppendHeader(table.Row{"Grade", "Count"})
			for i, label := range chart.Labels {
				tw.AppendRow(table.Row{label, chart.Counts[i]})
			}
			tw.Render()

			fmt.Fprintln(out, chart.Summary)
			return nil
		},
	}
}
