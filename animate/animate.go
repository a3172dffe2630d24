package animate

import (
	"context"
	"errors"
	"time"
)

// ErrEmptyPath indicates Play was given a scene without a path.
var ErrEmptyPath = errors.New("animate: scene has no path to play")

// Animator draws single frames of a Scene.
type Animator interface {
	Frame(s *Scene, step int) error
}

// Play draws one frame per path step, waiting delay between frames.
// A non-positive delay draws all frames back to back.
// It returns ctx.Err() if the context ends before the last frame.
func Play(ctx context.Context, a Animator, s *Scene, delay time.Duration) error {
	if s == nil || len(s.Path) == 0 {
		return ErrEmptyPath
	}

	var tick <-chan time.Time
	if delay > 0 {
		ticker := time.NewTicker(delay)
		defer ticker.Stop()
		tick = ticker.C
	}

	for step := range s.Path {
		if step > 0 && tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.Frame(s, step); err != nil {
			return err
		}
	}

	return nil
}
