package wizard

import (
	"fmt"
	"io"
	"strings"
)

// One-shot message helpers sharing the prompt glyph and color discipline.
// They write plain lines (no erase cycle), so they are safe to interleave
// with prompts and indicators but must not run while one is active.

// Intro prints the opening line of a prompt flow.
func Intro(title string) {
	writeIntro(defaultOutput(), detectCapabilities(), ThemeDefault, title)
}

// Outro prints the closing line of a prompt flow.
func Outro(message string) {
	writeOutro(defaultOutput(), detectCapabilities(), ThemeDefault, message)
}

// Note prints a titled block of free-form text.
func Note(message, title string) {
	writeNote(defaultOutput(), detectCapabilities(), ThemeDefault, message, title)
}

// Info prints a one-line informational message.
func Info(message string) {
	writeLog(defaultOutput(), detectCapabilities(), ThemeDefault, logInfo, message)
}

// Success prints a one-line success message.
func Success(message string) {
	writeLog(defaultOutput(), detectCapabilities(), ThemeDefault, logSuccess, message)
}

// Warn prints a one-line warning.
func Warn(message string) {
	writeLog(defaultOutput(), detectCapabilities(), ThemeDefault, logWarn, message)
}

// Error prints a one-line error message.
func Error(message string) {
	writeLog(defaultOutput(), detectCapabilities(), ThemeDefault, logError, message)
}

// Step prints a one-line completed-step message.
func Step(message string) {
	writeLog(defaultOutput(), detectCapabilities(), ThemeDefault, logStep, message)
}

type logLevel int

const (
	logInfo logLevel = iota
	logSuccess
	logWarn
	logError
	logStep
)

func writeIntro(w io.Writer, caps capabilities, theme *Theme, title string) {
	st := newStyle(theme, caps, 80)
	corner := "┌"
	if !caps.unicode {
		corner = "+"
	}
	fmt.Fprintf(w, "%s %s\n", st.paint(st.theme.Muted, corner), st.paint(st.theme.Title, title))
}

func writeOutro(w io.Writer, caps capabilities, theme *Theme, message string) {
	st := newStyle(theme, caps, 80)
	corner := "└"
	if !caps.unicode {
		corner = "+"
	}
	fmt.Fprintf(w, "%s %s\n", st.paint(st.theme.Muted, corner), st.paint(st.theme.Title, message))
}

func writeNote(w io.Writer, caps capabilities, theme *Theme, message, title string) {
	st := newStyle(theme, caps, 80)
	if title != "" {
		fmt.Fprintf(w, "%s %s\n", st.paint(st.theme.Accent, st.glyphs.step), st.paint(st.theme.Title, title))
	}
	for _, line := range strings.Split(message, "\n") {
		fmt.Fprintf(w, "%s %s\n", st.paint(st.theme.Muted, st.glyphs.bar), st.paint(st.theme.Option, line))
	}
}

func writeLog(w io.Writer, caps capabilities, theme *Theme, level logLevel, message string) {
	st := newStyle(theme, caps, 80)
	g := st.glyphs

	var glyph string
	switch level {
	case logSuccess:
		glyph = st.paint(st.theme.Selected, g.submit)
	case logWarn:
		glyph = st.paint(st.theme.Error, g.warn)
	case logError:
		glyph = st.paint(st.theme.Error, g.errMark)
	case logStep:
		glyph = st.paint(st.theme.Accent, g.step)
	default:
		glyph = st.paint(st.theme.Accent, g.info)
	}
	fmt.Fprintf(w, "%s %s\n", glyph, st.paint(st.theme.Option, message))
}
