package wizard

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Spinner is a timer-driven activity indicator sharing the prompt render
// surface and its terminal discipline: cursor hidden while running, one
// erase-then-write cycle per tick, cursor restored on every stop path
// including interrupt signals.
type Spinner struct {
	mu sync.Mutex

	out      io.Writer
	theme    *Theme
	interval time.Duration
	frames   []string
	elapsed  bool // append elapsed seconds to each frame

	guard     *termGuard
	rend      *renderer
	st        *style
	release   func()
	message   string
	frameIdx  int
	startTime time.Time
	running   bool

	stopCh chan struct{}
	done   chan struct{}
	sigCh  chan os.Signal
}

// IndicatorOption configures a Spinner or ProgressBar.
type IndicatorOption func(*indicatorConfig)

type indicatorConfig struct {
	output   io.Writer
	theme    *Theme
	interval time.Duration
	elapsed  bool
}

// WithOutput redirects indicator frames, mainly for tests.
func WithOutput(w io.Writer) IndicatorOption {
	return func(c *indicatorConfig) { c.output = w }
}

// WithTheme sets the color theme.
func WithTheme(theme *Theme) IndicatorOption {
	return func(c *indicatorConfig) { c.theme = theme }
}

// WithInterval overrides the tick interval.
func WithInterval(d time.Duration) IndicatorOption {
	return func(c *indicatorConfig) { c.interval = d }
}

// WithElapsed appends the elapsed time to every frame.
func WithElapsed() IndicatorOption {
	return func(c *indicatorConfig) { c.elapsed = true }
}

func applyIndicatorOptions(opts []IndicatorOption) indicatorConfig {
	cfg := indicatorConfig{output: defaultOutput()}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// writerIsTerminal reports whether frames written to w can be erased again.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewSpinner creates a stopped spinner. Call Start to begin animating.
func NewSpinner(opts ...IndicatorOption) *Spinner {
	cfg := applyIndicatorOptions(opts)
	return &Spinner{
		out:      cfg.output,
		theme:    cfg.theme,
		interval: cfg.interval,
		elapsed:  cfg.elapsed,
		guard:    sharedGuard,
	}
}

// Start claims the terminal, renders the first frame, and begins ticking.
// Starting an already-running spinner is a no-op; starting while another
// session holds the terminal returns ErrSessionActive.
func (s *Spinner) Start(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	release, err := s.guard.acquire()
	if err != nil {
		return err
	}

	caps := detectCapabilities()
	glyphs := glyphsFor(caps)
	interactive := !caps.noInteraction && writerIsTerminal(s.out)

	s.st = newStyle(s.theme, caps, 80)
	s.rend = newRenderer(s.out, interactive)
	s.release = release
	s.message = message
	s.frameIdx = 0
	s.startTime = time.Now()
	s.frames = glyphs.spinnerFrames
	if s.interval <= 0 {
		s.interval = glyphs.spinnerInterval
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})
	s.sigCh = make(chan os.Signal, 1)
	signal.Notify(s.sigCh, os.Interrupt)

	_ = s.rend.writeFrame(s.frame())

	go s.run()
	return nil
}

// run is the tick loop. It exits when Stop closes stopCh or an interrupt
// arrives, in which case the spinner stops itself with the cancel code.
func (s *Spinner) run() {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-s.sigCh:
			s.stop("", 1, false)
			return
		case <-ticker.C:
			s.mu.Lock()
			if !s.running {
				s.mu.Unlock()
				return
			}
			s.frameIdx = (s.frameIdx + 1) % len(s.frames)
			_ = s.rend.writeFrame(s.frame())
			s.mu.Unlock()
		}
	}
}

// Message replaces the label. The new text appears on the next tick; no
// immediate redraw is forced.
func (s *Spinner) Message(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = text
}

// Elapsed returns the time since Start. Zero when never started.
func (s *Spinner) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

// Stop cancels the tick timer, erases the last frame, and writes one final
// line whose leading glyph encodes the outcome: 0 success, 1 cancellation,
// anything else an error. The empty message keeps the current label.
// Stopping an already-stopped spinner is a no-op.
func (s *Spinner) Stop(message string, code int) {
	s.stop(message, code, true)
}

func (s *Spinner) stop(message string, code int, wait bool) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	signal.Stop(s.sigCh)

	if message == "" {
		message = s.message
	}
	_ = s.rend.writeFrame(s.finalLine(message, code))
	_ = s.rend.finish()
	_ = s.rend.restore()
	s.release()
	s.mu.Unlock()

	if wait {
		<-s.done
	}
}

// frame builds the current spinner line. Non-interactive surfaces get a
// static glyph so append-only output only advances when the message changes.
func (s *Spinner) frame() string {
	glyph := s.frames[s.frameIdx]
	if !s.rend.interactive {
		glyph = s.st.glyphs.bar
	}
	line := s.st.paint(s.st.theme.Accent, glyph) + " " + s.st.paint(s.st.theme.Title, s.message)
	if s.elapsed {
		line += " " + s.st.paint(s.st.theme.Hint, fmt.Sprintf("(%ds)", int(time.Since(s.startTime).Seconds())))
	}
	return line
}

// finalLine encodes the outcome in the leading glyph.
func (s *Spinner) finalLine(message string, code int) string {
	g := s.st.glyphs
	var glyph string
	switch {
	case code == 0:
		glyph = s.st.paint(s.st.theme.Selected, g.submit)
	case code == 1:
		glyph = s.st.paint(s.st.theme.Error, g.cancel)
	default:
		glyph = s.st.paint(s.st.theme.Error, g.errMark)
	}
	line := glyph + " " + s.st.paint(s.st.theme.Title, message)
	if s.elapsed {
		line += " " + s.st.paint(s.st.theme.Hint, fmt.Sprintf("(%ds)", int(time.Since(s.startTime).Seconds())))
	}
	return strings.TrimRight(line, " ")
}
