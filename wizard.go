package wizard

import (
	"errors"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/mattn/go-colorable"
)

// Common errors.
var (
	// ErrCanceled is returned when the user cancels a prompt with Ctrl+C,
	// an interrupt signal, or context cancellation. Callers must check for
	// it with errors.Is before using the returned value.
	ErrCanceled = errors.New("canceled")
	// ErrEOF is returned when the input stream ends before a submit.
	ErrEOF = errors.New("EOF")
	// ErrSessionActive is returned when a prompt or indicator starts while
	// another one already owns the terminal. That is a programming error in
	// the caller.
	ErrSessionActive = errors.New("another interactive session is active")
	// ErrNonInteractive is returned when prompts are disabled (CI or
	// WIZARD_NO_INTERACTION) and no default value is available.
	ErrNonInteractive = errors.New("interactive input disabled and no default value")
)

// IsCancel reports whether err represents user cancellation. Sugar for
// errors.Is(err, ErrCanceled).
func IsCancel(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// termGuard protects the singleton terminal resources: raw input mode and
// cursor visibility. Only one prompt session or timed indicator may hold
// them at a time.
type termGuard struct {
	mu sync.Mutex
}

// acquire claims terminal control for one session, failing when another
// session already holds it. The returned release function is idempotent and
// must run on every exit path.
func (g *termGuard) acquire() (func(), error) {
	if !g.mu.TryLock() {
		return nil, ErrSessionActive
	}
	var once sync.Once
	return func() {
		once.Do(g.mu.Unlock)
	}, nil
}

// sharedGuard is the process-wide terminal guard used by real sessions and
// indicators. Mock sessions get private guards so tests can run in parallel.
var sharedGuard = &termGuard{}

// sessionIO bundles the input device, the output stream, and the detected
// capabilities for one prompt session.
type sessionIO struct {
	term  terminalInterface
	keys  *keySource
	out   io.Writer
	caps  capabilities
	guard *termGuard
}

// newSessionIO opens the process terminal, falling back to line-buffered
// stdin when no TTY is available so scripted and CI runs keep working.
func newSessionIO() (*sessionIO, error) {
	caps := detectCapabilities()

	var t terminalInterface
	if rt, err := newRealTerminal(); err == nil {
		t = rt
	} else {
		t = newPipeTerminal(os.Stdin)
		caps.interactive = false
	}

	return &sessionIO{
		term:  t,
		keys:  newKeySource(t),
		out:   defaultOutput(),
		caps:  caps,
		guard: sharedGuard,
	}, nil
}

// newMockSessionIO builds a sessionIO around a scripted terminal; tests use
// it to drive sessions deterministically.
func newMockSessionIO(input string, out io.Writer, caps capabilities) *sessionIO {
	t := newMockTerminal(input)
	return &sessionIO{
		term:  t,
		keys:  newKeySource(t),
		out:   out,
		caps:  caps,
		guard: &termGuard{},
	}
}

func (s *sessionIO) Close() error {
	return s.term.Close()
}

// style builds the paint helper for this session's terminal.
func (s *sessionIO) style(theme *Theme) *style {
	w, _, err := s.term.Size()
	if err != nil {
		w = 80
	}
	return newStyle(theme, s.caps, w)
}

// defaultOutput returns stdout with ANSI support on Windows.
func defaultOutput() io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

// CancelNotice is what callers conventionally print before exiting with
// code 1 after a canceled prompt, so CLIs render cancellation consistently.
func CancelNotice() string {
	return "Operation canceled."
}
