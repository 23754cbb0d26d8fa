package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"scriptir/internal/constpool"
	"scriptir/internal/ui"
)

type loadOutcome struct {
	pools []*constpool.Pool
	err   error
}

func loadPoolsWithUI(ctx context.Context, title string, paths []string, opts constpool.Options, jobs int) ([]*constpool.Pool, error) {
	events := make(chan constpool.LoadEvent, 256)
	outcomeCh := make(chan loadOutcome, 1)

	go func() {
		pools, err := constpool.LoadAllProgress(ctx, paths, opts, jobs, events)
		outcomeCh <- loadOutcome{pools: pools, err: err}
	}()

	model := ui.NewProgressModel(title, paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.pools, uiErr
	}
	return outcome.pools, outcome.err
}
