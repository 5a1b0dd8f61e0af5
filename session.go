package wizard

import (
	"context"
	"os"
	"os/signal"
)

// State is the lifecycle state of a prompt session.
type State int

// Session states. StateSubmit and StateCancel are terminal: once entered, the
// key subscription is detached, the cursor is restored, and one final frame
// is rendered.
const (
	StateInitial State = iota
	StateActive
	StateValidating
	StateError
	StateSubmit
	StateCancel
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateActive:
		return "active"
	case StateValidating:
		return "validating"
	case StateError:
		return "error"
	case StateSubmit:
		return "submit"
	case StateCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// keyEvent is a controller's reaction to one key.
type keyEvent int

const (
	// eventIgnored: the key had no bound action; do not redraw.
	eventIgnored keyEvent = iota
	// eventEdited: value or cursor changed; clear any error and redraw.
	eventEdited
	// eventSubmit: the variant's submit key was pressed.
	eventSubmit
)

// controller is the behavior specialization implemented by each prompt
// variant. The session owns the state machine and rendering cadence; the
// controller owns the value, the key-to-action mapping, and the frame text.
type controller[T any] interface {
	// handleKey mutates the in-progress value or cursor for one key event.
	handleKey(k Key) keyEvent
	// view builds the full frame for the given state. errMsg is non-empty
	// only in StateError.
	view(state State, errMsg string) string
	// value returns the current candidate (or final) answer.
	value() T
}

// runSession drives a prompt variant from first render to a terminal state.
//
// Ordering guarantees: key events are processed strictly in arrival order.
// Events arriving while a validation is pending are buffered and replayed in
// order after it settles ("replay all" semantics). Cancellation via Ctrl+C,
// SIGINT, or ctx beats an in-flight validation: a verdict arriving after
// cancel is discarded.
//
// Cleanup is guaranteed on every exit path: terminal control released, key
// subscription detached, raw mode and cursor restored. A panic inside the
// controller or renderer still runs the deferred cleanup before propagating.
func runSession[T any](ctx context.Context, sio *sessionIO, ctrl controller[T], validate Validator[T]) (T, error) {
	var zero T

	release, err := sio.guard.acquire()
	if err != nil {
		return zero, err
	}
	defer release()

	rend := newRenderer(sio.out, sio.caps.interactive)
	defer rend.restore()

	sub, err := sio.keys.subscribe()
	if err != nil {
		return zero, err
	}
	defer sub.detach()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	state := StateActive
	errMsg := ""
	var valCh <-chan error // nil while no validation is pending
	var pending []Key      // keys buffered during validation, replayed in order

	render := func() error {
		return rend.writeFrame(ctrl.view(state, errMsg))
	}

	// finish renders the terminal-state frame and closes out the block.
	finish := func(final State) {
		state = final
		errMsg = ""
		_ = rend.writeFrame(ctrl.view(state, ""))
		_ = rend.finish()
		_ = rend.restore()
		sub.detach()
	}

	if err := render(); err != nil {
		return zero, err
	}

	for {
		var k Key
		haveKey := false

		// Replay buffered keys first once no validation is pending. An
		// external abort still takes priority over queued keys.
		if valCh == nil && len(pending) > 0 {
			select {
			case <-ctx.Done():
				finish(StateCancel)
				return zero, ErrCanceled
			case <-sigCh:
				finish(StateCancel)
				return zero, ErrCanceled
			default:
			}
			k = pending[0]
			pending = pending[1:]
			haveKey = true
		} else {
			select {
			case <-ctx.Done():
				finish(StateCancel)
				return zero, ErrCanceled

			case <-sigCh:
				finish(StateCancel)
				return zero, ErrCanceled

			case k = <-sub.events:
				haveKey = true

			case verr := <-valCh:
				valCh = nil
				// Cancellation wins the race: sweep keys that arrived while
				// the validator ran before honoring its verdict.
				var canceled bool
				pending, canceled = sweepPending(sub.events, pending)
				if canceled {
					finish(StateCancel)
					return zero, ErrCanceled
				}
				if verr != nil {
					state = StateError
					errMsg = verr.Error()
					if err := render(); err != nil {
						return zero, err
					}
					continue
				}
				finish(StateSubmit)
				return ctrl.value(), nil
			}
		}

		if !haveKey {
			continue
		}

		switch k.Name {
		case KeyCancel:
			finish(StateCancel)
			return zero, ErrCanceled
		case KeyEOF:
			finish(StateCancel)
			return zero, ErrEOF
		}

		if valCh != nil {
			// Validation pending: buffer everything except cancellation.
			pending = append(pending, k)
			continue
		}

		switch ctrl.handleKey(k) {
		case eventIgnored:
			// No visible change, no redraw.

		case eventEdited:
			state = StateActive
			errMsg = ""
			if err := render(); err != nil {
				return zero, err
			}

		case eventSubmit:
			if validate == nil {
				finish(StateSubmit)
				return ctrl.value(), nil
			}
			state = StateValidating
			errMsg = ""
			if err := render(); err != nil {
				return zero, err
			}
			valCh = startValidation(validate, ctrl.value())
		}
	}
}

// sweepPending drains keys that already arrived without blocking, appending
// them to the replay buffer. It reports whether a cancellation key was seen
// either in the buffer or among the drained keys.
func sweepPending(events <-chan Key, pending []Key) ([]Key, bool) {
	for _, k := range pending {
		if k.Name == KeyCancel {
			return pending, true
		}
	}
	for {
		select {
		case k := <-events:
			if k.Name == KeyCancel {
				return pending, true
			}
			pending = append(pending, k)
		default:
			return pending, false
		}
	}
}
