package wizard

import (
	"fmt"
	"io"
	"strings"
)

// renderer is the shared output surface for prompts and timed indicators.
//
// Every redraw erases exactly the number of lines written by the previous
// frame, so frame height may change between redraws (validation errors add a
// line) without leaving stray output. Identical consecutive frames are
// skipped to avoid flicker. On non-interactive output the renderer degrades
// to append-only writes so logs stay linear.
type renderer struct {
	out         io.Writer
	interactive bool

	lastLines    int    // lines written by the previous frame
	lastFrame    string // previous frame text, for duplicate suppression
	cursorHidden bool
	restored     bool
}

func newRenderer(out io.Writer, interactive bool) *renderer {
	return &renderer{out: out, interactive: interactive}
}

// writeFrame erases the previous frame and writes a replacement. The frame
// may span multiple lines separated by '\n'. The terminal cursor is hidden
// on the first interactive write and stays hidden until restore.
func (r *renderer) writeFrame(frame string) error {
	if frame == r.lastFrame {
		return nil
	}

	if !r.interactive {
		// Append-only degradation: no erase, no cursor games.
		if _, err := fmt.Fprintln(r.out, frame); err != nil {
			return err
		}
		r.lastFrame = frame
		return nil
	}

	if !r.cursorHidden {
		if _, err := fmt.Fprint(r.out, "\x1b[?25l"); err != nil {
			return err
		}
		r.cursorHidden = true
	}

	if err := r.eraseFrame(r.lastLines); err != nil {
		return err
	}

	// Raw mode needs explicit carriage returns.
	lines := strings.Split(frame, "\n")
	if _, err := fmt.Fprint(r.out, strings.Join(lines, "\r\n")); err != nil {
		return err
	}

	r.lastLines = len(lines)
	r.lastFrame = frame
	return nil
}

// eraseFrame clears lineCount previously written lines and leaves the cursor
// at column zero of the topmost cleared line.
func (r *renderer) eraseFrame(lineCount int) error {
	if lineCount <= 0 {
		_, err := fmt.Fprint(r.out, "\r\x1b[2K")
		return err
	}
	if _, err := fmt.Fprint(r.out, "\r\x1b[2K"); err != nil {
		return err
	}
	for i := 0; i < lineCount-1; i++ {
		if _, err := fmt.Fprint(r.out, "\x1b[1A\x1b[2K"); err != nil {
			return err
		}
	}
	return nil
}

// finish terminates the frame block with a newline so subsequent output
// starts below it.
func (r *renderer) finish() error {
	if !r.interactive {
		return nil
	}
	_, err := fmt.Fprint(r.out, "\r\n")
	return err
}

// restore makes the cursor visible again. It is idempotent and must run on
// every session exit path.
func (r *renderer) restore() error {
	if r.restored || !r.cursorHidden {
		r.restored = true
		return nil
	}
	r.restored = true
	_, err := fmt.Fprint(r.out, "\x1b[?25h")
	return err
}
