// ABOUTME: Spinner demo: hides the cursor while a renderer and a worker share counters
// ABOUTME: Goroutines run under an errgroup; a render panic restores the cursor and fails the group

package main

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/sync/errgroup"

	tlog "github.com/mauromedda/termrt/internal/log"
	"github.com/mauromedda/termrt/pkg/tui/counter"
	"github.com/mauromedda/termrt/pkg/tui/terminal"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

const (
	frameInterval = 80 * time.Millisecond
	workInterval  = 25 * time.Millisecond
)

// frameText renders one spinner line.
type frameText func(frame string, units int32) string

func spinnerLine(frame string, units int32) string {
	return fmt.Sprintf("\r%s%s working: %d units", ansi.EraseEntireLine, frame, units)
}

func spin(ctx context.Context, term *terminal.ProcessTerminal, d time.Duration, restoreOnExit bool) error {
	return runSpinner(ctx, term, d, restoreOnExit, spinnerLine)
}

// runSpinner renders frames with the cursor hidden until d elapses. A panic
// while rendering shows the cursor and is returned as an error.
func runSpinner(ctx context.Context, term *terminal.ProcessTerminal, d time.Duration, restoreOnExit bool, render frameText) error {
	cursor := term.Cursor()
	if err := cursor.Hide(restoreOnExit); err != nil {
		return fmt.Errorf("hiding cursor: %w", err)
	}
	defer func() { _ = cursor.Show() }()

	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	frames := counter.New(0)
	units := counter.New(0)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ticker := time.NewTicker(workInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				units.GetAndIncrement()
			}
		}
	})

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				_ = cursor.Show()
				tlog.Debug("termcaps: spinner panic: %v\n%s", r, debug.Stack())
				err = fmt.Errorf("spinner panic: %v", r)
			}
		}()

		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				n := uint32(frames.GetAndIncrement())
				frame := spinnerFrames[n%uint32(len(spinnerFrames))]
				if printErr := term.Print(terminal.PrintRequest{Text: render(frame, units.Get())}); printErr != nil {
					return printErr
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("rendering spinner: %w", err)
	}
	return term.Println(fmt.Sprintf("\r%sdone: %d units in %d frames", ansi.EraseEntireLine, units.Get(), frames.Get()))
}
