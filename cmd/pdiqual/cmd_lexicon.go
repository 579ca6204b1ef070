package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/lexicon"
)

func newLexiconCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Inspect and validate lexicon override files",
	}
	cmd.AddCommand(newLexiconValidateCommand())
	return cmd
}

func newLexiconValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <lexicon.yaml>",
		Short: "Validate a lexicon override file",
		Long: `Validate a lexicon override file against the schema and the
semantic rules (threshold ordering, weight ranges, compilable patterns).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := lexicon.Load(path); err != nil {
				return &ValidationError{Message: fmt.Sprintf("invalid lexicon %s: %v", path, err)}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", path)
			return nil
		},
	}
}
