package wizard

import (
	"context"
	"errors"
)

// Task is one named unit of work for Tasks. Run may return a completion
// message shown instead of the title once the task finishes.
type Task struct {
	Title string
	Run   func(ctx context.Context) (string, error)
}

// Tasks executes tasks sequentially, each under its own spinner. A failing
// task stops the run: its spinner closes with the error glyph and the error
// is returned. A context cancellation closes the active spinner with the
// cancel glyph and returns ErrCanceled.
func Tasks(ctx context.Context, tasks []Task, opts ...IndicatorOption) error {
	for _, task := range tasks {
		if task.Run == nil {
			continue
		}

		s := NewSpinner(opts...)
		if err := s.Start(task.Title); err != nil {
			return err
		}

		msg, err := task.Run(ctx)
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, ErrCanceled):
			s.Stop(task.Title, 1)
			return ErrCanceled
		case err != nil:
			s.Stop(err.Error(), 2)
			return err
		}

		if msg == "" {
			msg = task.Title
		}
		s.Stop(msg, 0)

		if ctx.Err() != nil {
			return ErrCanceled
		}
	}
	return nil
}
