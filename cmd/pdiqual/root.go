package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdiqual",
		Short: "pdiqual - quality scoring for individual development plans",
		Long: `pdiqual scores the written quality of PDI (individual development plan)
records: clarity, specificity, completeness, structure, and SMART criteria,
plus hard/soft skill classification and improvement suggestions.

It analyzes a single record from flags or a whole export file in batch.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newAnalyzeCommand())
	cmd.AddCommand(newBatchCommand())
	cmd.AddCommand(newLexiconCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
