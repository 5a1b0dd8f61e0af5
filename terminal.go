package wizard

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts the input device so prompt sessions can run on
// a real terminal, a pipe, or a scripted mock in tests.
//
// Implementations:
//   - realTerminal: go-tty backed, raw mode via golang.org/x/term
//   - pipeTerminal: line-buffered fallback when no TTY is available
//   - mockTerminal: deterministic input for tests
type terminalInterface interface {
	SetRaw() error                        // enter raw mode (no-op without a TTY)
	Restore() error                       // restore the original terminal mode
	Size() (width, height int, err error) // terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // read one Unicode character
	Buffered() bool                       // true if input is queued behind the last read
	Close() error                         // release the device
}

// realTerminal drives an actual TTY. Raw-mode state is captured with
// golang.org/x/term before every SetRaw so that sequential prompt sessions
// each restore a correct baseline, and Close is guarded against double-close
// (panics on Windows otherwise).
type realTerminal struct {
	tty           *tty.TTY
	closed        bool
	stdinFd       int
	originalState *term.State
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	if !term.IsTerminal(t.stdinFd) {
		return nil
	}
	state, err := term.GetState(t.stdinFd)
	if err != nil {
		return err
	}
	t.originalState = state
	if _, err := term.MakeRaw(t.stdinFd); err != nil {
		return err
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState == nil || !term.IsTerminal(t.stdinFd) {
		return nil
	}
	err := term.Restore(t.stdinFd, t.originalState)
	// Clear so the next SetRaw captures a fresh baseline.
	t.originalState = nil
	return err
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Safe fallback to avoid zero-width layout math.
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Buffered() bool {
	return t.tty.Buffered()
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.tty != nil {
		return t.tty.Close()
	}
	return nil
}

// pipeTerminal reads from a plain stream when no TTY can be opened (piped
// stdin, CI). Raw mode is unavailable, so input arrives line-buffered, but
// key decoding still works deterministically.
type pipeTerminal struct {
	in *bufio.Reader
}

func newPipeTerminal(in io.Reader) *pipeTerminal {
	return &pipeTerminal{in: bufio.NewReader(in)}
}

func (t *pipeTerminal) SetRaw() error  { return nil }
func (t *pipeTerminal) Restore() error { return nil }

func (t *pipeTerminal) Size() (width, height int, err error) {
	return 80, 24, nil
}

func (t *pipeTerminal) ReadRune() (rune, int, error) {
	return t.in.ReadRune()
}

func (t *pipeTerminal) Buffered() bool {
	return t.in.Buffered() > 0
}

func (t *pipeTerminal) Close() error { return nil }
