package wizard

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Frame construction shared by all prompt variants. A frame is the full text
// block written for one render: a header line carrying the state glyph and
// message, the variant's body lines, and an optional trailing error line.

// stateGlyph returns the painted leading glyph for a session state.
func (st *style) stateGlyph(state State) string {
	g := st.glyphs
	switch state {
	case StateSubmit:
		return st.paint(st.theme.Selected, g.submit)
	case StateCancel:
		return st.paint(st.theme.Error, g.cancel)
	case StateError:
		return st.paint(st.theme.Error, g.errMark)
	default:
		return st.paint(st.theme.Accent, g.active)
	}
}

// header renders the first frame line: state glyph plus prompt message.
func (st *style) header(state State, message string) string {
	return st.stateGlyph(state) + " " + st.paint(st.theme.Title, message)
}

// bodyLine renders one continuation line under the header.
func (st *style) bodyLine(content string) string {
	return st.paint(st.theme.Muted, st.glyphs.bar) + " " + content
}

// errorLine renders the trailing validation-failure line.
func (st *style) errorLine(msg string) string {
	return st.paint(st.theme.Error, st.glyphs.errMark+" "+msg)
}

// validatingLine renders the hint shown while an asynchronous validator runs.
func (st *style) validatingLine() string {
	return st.bodyLine(st.paint(st.theme.Hint, "validating..."))
}

// finalFrame renders the single-line frame for terminal states: the message
// followed by the (dimmed) answer, or a cancellation marker.
func (st *style) finalFrame(state State, message, answer string) string {
	if state == StateCancel {
		answer = "(canceled)"
	}
	line := st.header(state, message)
	if answer != "" {
		line += " " + st.paint(st.theme.Muted, answer)
	}
	return line
}

// inputLine renders an editable text line with a reverse-video cursor block.
// When masked, every entered rune is drawn as the mask glyph and the raw
// value never reaches the output stream.
func (st *style) inputLine(value []rune, cursor int, placeholder string, masked bool, showCursor bool) string {
	if len(value) == 0 && placeholder != "" && !masked {
		text := st.paint(st.theme.Placeholder, placeholder)
		if showCursor {
			text = st.invert(firstCell(placeholder)) + st.paint(st.theme.Placeholder, restCells(placeholder))
		}
		return st.bodyLine(text)
	}

	display := make([]string, len(value))
	for i, r := range value {
		if masked {
			display[i] = st.glyphs.mask
		} else {
			display[i] = string(r)
		}
	}

	var b strings.Builder
	for i, cell := range display {
		if showCursor && i == cursor {
			b.WriteString(st.invert(cell))
		} else {
			b.WriteString(st.paint(st.theme.Input, cell))
		}
	}
	if showCursor && cursor >= len(display) {
		b.WriteString(st.invert(" "))
	}
	return st.bodyLine(b.String())
}

// optionLabel trims a label (plus hint) to the terminal width.
func (st *style) optionLabel(label, hint string) string {
	text := label
	if hint != "" {
		text += " (" + hint + ")"
	}
	// Leave room for the bar, cursor, and checkbox glyphs.
	return runewidth.Truncate(text, st.width-8, "...")
}

func firstCell(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return " "
	}
	return string(r[0])
}

func restCells(s string) string {
	r := []rune(s)
	if len(r) <= 1 {
		return ""
	}
	return string(r[1:])
}
