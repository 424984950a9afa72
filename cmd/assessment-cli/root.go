// cmd/assessment-cli/root.go
package main

import (
	"career-assessment-workers/internal/assessment"
	"career-assessment-workers/internal/common/config"
	"career-assessment-workers/internal/common/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "assessment-cli"

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "Offline tools for the career assessment workers",
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "worker config file; engine weights and top_n are read from it")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func newLogger() logger.Logger {
	level := "warn"
	if viper.GetBool("debug") {
		level = "debug"
	}
	return logger.NewStructured(level, "console")
}

// engineConfig starts from the built-in catalog and applies the assessment
// section of --config when given.
func engineConfig() (assessment.EngineConfig, error) {
	ec := assessment.DefaultConfig()
	if cfgFile == "" {
		return ec, nil
	}
	cfg, err := config.LoadFromFile(cfgFile)
	if err != nil {
		return ec, err
	}
	ec.Weights = cfg.Assessment.Weights
	ec.TopN = cfg.Assessment.TopN
	return ec, nil
}
