package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"solscope/internal/check"
	"solscope/internal/format"
)

var errChecksFailed = errors.New("one or more checks failed, review above output")
var errInvalidNames = errors.New("invalid names found")

var errorLabel = color.New(color.FgRed, color.Bold)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate naming conventions and formatting",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("ui", false, "show live per-file progress")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}
	useUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return err
	}

	// обе проверки выполняются всегда, чтобы вывод был полным
	conventionsErr := validateConventions(cmd.Context(), jobs, useUI)
	fmtErr := format.Validate(cmd.Context(), format.Options{})
	if fmtErr != nil && !errors.Is(fmtErr, format.ErrNotFormatted) {
		fmt.Fprintln(os.Stderr, fmtErr)
	}

	if conventionsErr == nil && fmtErr == nil {
		return nil
	}
	return errChecksFailed
}

// validateConventions runs the convention pipeline and prints the report
// plus the summary line on failure.
func validateConventions(ctx context.Context, jobs int, useUI bool) error {
	var report *check.Report
	var err error
	if useUI {
		report, err = runCheckWithUI(ctx, "solscope check", jobs)
	} else {
		report, err = check.Run(ctx, check.Options{Jobs: jobs})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if !report.IsValid() {
		if renderErr := report.Render(os.Stderr); renderErr != nil {
			return renderErr
		}
		fmt.Fprintf(os.Stderr, "%s: Convention checks failed, see details above\n",
			errorLabel.Sprint("error"))
		return errInvalidNames
	}
	return nil
}
