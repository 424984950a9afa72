// cmd/assessment-cli/catalog.go
package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"career-assessment-workers/internal/assessment"
	"career-assessment-workers/internal/models"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate the static catalog and print question counts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ec, err := engineConfig()
		if err != nil {
			return err
		}
		return runCatalog(cmd.OutOrStdout(), ec)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(w io.Writer, ec assessment.EngineConfig) error {
	engine, err := assessment.NewEngine(ec)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEST\tQUESTIONS\tCATEGORIES")
	for _, t := range models.AllTestTypes {
		qs := engine.Questions(t)
		categories := make(map[models.Category]bool)
		for _, q := range qs {
			categories[q.Category] = true
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", t, len(qs), len(categories))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	weights := engine.Weights()
	fmt.Fprintf(w, "\nweights: personality=%.2f aptitude=%.2f interest=%.2f, top %d careers\n",
		weights.Personality, weights.Aptitude, weights.Interest, engine.TopN())
	return nil
}
