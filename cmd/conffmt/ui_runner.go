package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"conffmt/internal/driver"
	"conffmt/internal/source"
	"conffmt/internal/ui"
)

// runFormatWithUI runs FormatPaths while a Bubble Tea progress view consumes
// its events on the terminal.
func runFormatWithUI(ctx context.Context, paths []string, opts driver.FormatOptions) (*source.FileSet, []driver.FormatResult, error) {
	events := make(chan driver.Event, 256)
	opts.Events = events

	type outcome struct {
		fileSet *source.FileSet
		results []driver.FormatResult
		err     error
	}
	done := make(chan outcome, 1)

	go func() {
		fileSet, results, err := driver.FormatPaths(ctx, paths, opts)
		close(events)
		done <- outcome{fileSet, results, err}
	}()

	// The model needs the file list up front; mirror the driver's own
	// collection so rows appear before the first event.
	files, err := driver.CollectConfigFiles(ctx, paths, opts.Extensions)
	if err != nil {
		// Drain so the driver goroutine never blocks on the channel.
		for range events {
		}
		out := <-done
		return out.fileSet, out.results, out.err
	}

	title := fmt.Sprintf("formatting %s", summarizePaths(paths))
	program := tea.NewProgram(ui.NewProgressModel(title, files, events), tea.WithOutput(os.Stderr))
	if _, uiErr := program.Run(); uiErr != nil {
		for range events {
		}
	}

	out := <-done
	return out.fileSet, out.results, out.err
}

func summarizePaths(paths []string) string {
	if len(paths) == 1 {
		if abs, err := filepath.Abs(paths[0]); err == nil {
			return filepath.Base(abs)
		}
		return paths[0]
	}
	return strings.Join(paths, ", ")
}
