package wizard

import "fmt"

// Validator checks a candidate value before a prompt may submit. Returning a
// non-nil error keeps the session active and displays the error text; it is
// never surfaced to the caller as a Go error. Validators may block (network
// lookups, slow checks); the session keeps consuming key events while one is
// pending and replays them once it settles.
type Validator[T any] func(value T) error

// startValidation runs the validator off the event loop and delivers its
// verdict on the returned channel. A panicking validator never kills the
// session; it surfaces as a generic error message instead.
func startValidation[T any](validate Validator[T], value T) <-chan error {
	ch := make(chan error, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				ch <- fmt.Errorf("validation failed: %v", rec)
			}
		}()
		ch <- validate(value)
	}()
	return ch
}
