package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"solscope/internal/check"
	"solscope/internal/ui"
)

type checkOutcome struct {
	report *check.Report
	err    error
}

func runCheckWithUI(ctx context.Context, title string, jobs int) (*check.Report, error) {
	files := check.ListFiles("", os.Stderr)
	display := make([]string, len(files))
	for i, f := range files {
		display[i] = "./" + f
	}

	events := make(chan check.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		report, err := check.Run(ctx, check.Options{
			Jobs:     jobs,
			Progress: check.ChannelSink{Ch: events},
		})
		outcomeCh <- checkOutcome{report: report, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, display, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.report, uiErr
	}
	return outcome.report, outcome.err
}
