package main

import (
	"github.com/spf13/cobra"

	"solscope/internal/spec"
)

var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "Generate a protocol specification from test names",
	Args:  cobra.NoArgs,
	RunE:  runSpec,
}

func runSpec(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	return spec.Run(spec.Options{})
}
