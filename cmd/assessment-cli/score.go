// cmd/assessment-cli/score.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"career-assessment-workers/internal/assessment"
	"career-assessment-workers/internal/models"
	"career-assessment-workers/internal/repository"

	"github.com/spf13/cobra"
)

// Fixture holds up to three answer batches for one individual.
type Fixture struct {
	IndividualID string                                `json:"individualId"`
	Tests        map[models.TestType][]models.Response `json:"tests"`
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a fixture offline and print the progress record",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("file")
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var fx Fixture
		if err := json.Unmarshal(raw, &fx); err != nil {
			return fmt.Errorf("parse fixture %s: %w", path, err)
		}

		ec, err := engineConfig()
		if err != nil {
			return err
		}
		return runScore(cmd.Context(), cmd.OutOrStdout(), ec, fx)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("file", "f", "", "fixture with individualId and tests.{personality,aptitude,interest}")
	_ = scoreCmd.MarkFlagRequired("file")
}

func runScore(ctx context.Context, w io.Writer, ec assessment.EngineConfig, fx Fixture) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if fx.IndividualID == "" {
		fx.IndividualID = "offline"
	}

	engine, err := assessment.NewEngine(ec)
	if err != nil {
		return err
	}
	svc := assessment.NewService(engine, repository.NewMemoryStore(), newLogger())

	out, err := svc.SubmitComplete(ctx, fx.IndividualID, fx.Tests)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Progress)
}
