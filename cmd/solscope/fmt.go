package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"solscope/internal/format"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Format Solidity sources and foundry.toml, then validate conventions",
	Args:  cobra.NoArgs,
	RunE:  runFmt,
}

func runFmt(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := format.Run(cmd.Context(), format.Options{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}
	return validateConventions(cmd.Context(), jobs, false)
}
