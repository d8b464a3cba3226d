package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/zotcurve/internal/format"
	"github.com/zotcurve/internal/matchers"
	"github.com/zotcurve/internal/query"
	"github.com/zotcurve/internal/statistics"
)

type searchFlags struct {
	query query.Query
	stats bool
}

func newSearchCmd(root *rootFlags) *cobra.Command {
	flags := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List classes matching the given filters",
		Long: "List classes matching the given filters. At least one of --department,\n" +
			"--course-code, --instructor or --title is required.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, root, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.query.Year, "year", matchers.NoFilter, "academic year, e.g. 2018to19")
	f.StringVar(&flags.query.Term, "term", matchers.NoFilter, "Fall, Winter, Spring or Summer")
	f.StringVar(&flags.query.Department, "department", matchers.NoFilter, "department code, e.g. COMPSCI")
	f.StringVar(&flags.query.CourseNumber, "course-number", "", "course numbers, e.g. 39, 100-199, 161A")
	f.StringVar(&flags.query.CourseCode, "course-code", "", "course codes or code ranges")
	f.StringVar(&flags.query.Instructor, "instructor", "", "part of the instructor name")
	f.StringVar(&flags.query.Title, "title", "", "part of the course title")
	f.BoolVar(&flags.stats, "stats", false, "also print per instructor statistics")
	return cmd
}

func runSearch(cmd *cobra.Command, root *rootFlags, flags *searchFlags) error {
	dataset, err := loadDataset(cmd, root)
	if err != nil {
		return fmt.Errorf("load grades: %w", err)
	}

	records, err := query.Evaluate(dataset.Records(), flags.query)
	if errors.Is(err, query.ErrInvalidSearch) {
		return fmt.Errorf("%w: use at least one of --department, --course-code, --instructor or --title", err)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No classes match your search.")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"ID", "Term", "Department", "Number", "Code", "Title", "Instructor"})
	for _, r := range records {
		tw.AppendRow(table.Row{
			r.ID,
			format.Term(r.Year, r.Term),
			r.Department,
			r.CourseNumber,
			r.CourseCode,
			r.Title,
			strings.TrimSpace(format.Capitalize(r.Instructor)),
		})
	}
	tw.Render()

	if !flags.stats {
		return nil
	}

	sw := table.NewWriter()
	sw.SetOutputMirror(out)
	sw.AppendHeader(table.Row{"Instructor", "Sections", "Letter graded", "Students", "Average GPA"})
	for _, s := range statistics.ByInstructor(records) {
		sw.AppendRow(table.Row{s.DisplayName, s.Sections, s.Graded, s.Total, s.GPA})
	}
	sw.Render()
	return nil
}
