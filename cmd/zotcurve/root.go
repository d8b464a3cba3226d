package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/zotcurve/internal/grades"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	grades string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "zotcurve",
		Short:         "Grade distributions of past classes",
		Long:          "zotcurve filters a tab separated grades dataset and shows the\ngrade distribution of a single class.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	defaultGrades := "grades.tsv"
	if env := os.Getenv("ZOTCURVE_GRADES"); env != "" {
		defaultGrades = env
	}
	cmd.PersistentFlags().StringVar(&flags.grades, "grades", defaultGrades, "path or url of the grades tsv file")

	cmd.AddCommand(newSearchCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	return cmd
}

func loadDataset(cmd *cobra.Command, flags *rootFlags) (*grades.Dataset, error) {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	return grades.NewLoader(logger).Load(cmd.Context(), flags.grades)
}
