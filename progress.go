package wizard

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"
)

// defaultProgressWidth is the bar width in cells, excluding glyph and label.
const defaultProgressWidth = 30

// ProgressBar is a timer-driven indicator rendering filled and empty bar
// segments plus a percentage. It shares the spinner's terminal discipline:
// cursor hidden while running, erase-then-write per tick, guaranteed cursor
// restore on stop, interrupt, or failure.
type ProgressBar struct {
	mu sync.Mutex

	out      io.Writer
	theme    *Theme
	interval time.Duration

	guard     *termGuard
	rend      *renderer
	st        *style
	release   func()
	message   string
	total     int
	current   int
	width     int
	startTime time.Time
	running   bool

	stopCh chan struct{}
	done   chan struct{}
	sigCh  chan os.Signal
}

// NewProgressBar creates a stopped progress bar counting up to total steps.
func NewProgressBar(total int, opts ...IndicatorOption) *ProgressBar {
	if total <= 0 {
		total = 1
	}
	cfg := applyIndicatorOptions(opts)
	return &ProgressBar{
		out:      cfg.output,
		theme:    cfg.theme,
		interval: cfg.interval,
		total:    total,
		width:    defaultProgressWidth,
		guard:    sharedGuard,
	}
}

// Start claims the terminal and begins ticking. No-op when already running.
func (p *ProgressBar) Start(message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return nil
	}

	release, err := p.guard.acquire()
	if err != nil {
		return err
	}

	caps := detectCapabilities()
	glyphs := glyphsFor(caps)
	p.st = newStyle(p.theme, caps, 80)
	p.rend = newRenderer(p.out, !caps.noInteraction && writerIsTerminal(p.out))
	p.release = release
	p.message = message
	p.current = 0
	p.startTime = time.Now()
	if p.interval <= 0 {
		p.interval = glyphs.spinnerInterval
	}
	p.running = true
	p.stopCh = make(chan struct{})
	p.done = make(chan struct{})
	p.sigCh = make(chan os.Signal, 1)
	signal.Notify(p.sigCh, os.Interrupt)

	_ = p.rend.writeFrame(p.frame())

	go p.run()
	return nil
}

func (p *ProgressBar) run() {
	defer close(p.done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-p.sigCh:
			p.stop("", 1, false)
			return
		case <-ticker.C:
			p.mu.Lock()
			if !p.running {
				p.mu.Unlock()
				return
			}
			_ = p.rend.writeFrame(p.frame())
			p.mu.Unlock()
		}
	}
}

// Advance moves the bar forward by n steps, clamped to the total. The new
// position is drawn on the next tick.
func (p *ProgressBar) Advance(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current += n
	if p.current > p.total {
		p.current = p.total
	}
	if p.current < 0 {
		p.current = 0
	}
}

// Message replaces the label shown next to the bar on the next tick.
func (p *ProgressBar) Message(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.message = text
}

// Stop cancels the tick timer and writes the final line. The glyph encodes
// the outcome (0 success, 1 cancel, >1 error). Idempotent.
func (p *ProgressBar) Stop(message string, code int) {
	p.stop(message, code, true)
}

func (p *ProgressBar) stop(message string, code int, wait bool) {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopCh)
	signal.Stop(p.sigCh)

	if message == "" {
		message = p.message
	}
	g := p.st.glyphs
	var glyph string
	switch {
	case code == 0:
		glyph = p.st.paint(p.st.theme.Selected, g.submit)
	case code == 1:
		glyph = p.st.paint(p.st.theme.Error, g.cancel)
	default:
		glyph = p.st.paint(p.st.theme.Error, g.errMark)
	}
	_ = p.rend.writeFrame(glyph + " " + p.st.paint(p.st.theme.Title, message))
	_ = p.rend.finish()
	_ = p.rend.restore()
	p.release()
	p.mu.Unlock()

	if wait {
		<-p.done
	}
}

// frame renders the bar: filled segments, empty segments, percentage, label.
func (p *ProgressBar) frame() string {
	g := p.st.glyphs
	filled := p.width * p.current / p.total
	percent := 100 * p.current / p.total

	bar := p.st.paint(p.st.theme.Accent, strings.Repeat(g.progressOn, filled)) +
		p.st.paint(p.st.theme.Muted, strings.Repeat(g.progressOff, p.width-filled))

	line := bar + " " + p.st.paint(p.st.theme.Hint, fmt.Sprintf("%3d%%", percent))
	if p.message != "" {
		line += " " + p.st.paint(p.st.theme.Title, p.message)
	}
	return line
}
