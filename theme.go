package wizard

import (
	"fmt"
	"strings"
	"time"
)

// Theme defines the color configuration for prompt widgets.
type Theme struct {
	Name        string `json:"name"`
	Title       Color  `json:"title"`       // prompt message
	Input       Color  `json:"input"`       // typed value
	Placeholder Color  `json:"placeholder"` // placeholder shown while empty
	Hint        Color  `json:"hint"`        // option hints, validating notice
	Error       Color  `json:"error"`       // validation messages
	Option      Color  `json:"option"`      // unselected options
	Selected    Color  `json:"selected"`    // highlighted/selected options
	Accent      Color  `json:"accent"`      // state glyphs, spinner frames
	Muted       Color  `json:"muted"`       // final answers, canceled markers
}

// Color represents an RGB color with optional bold formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default theme with a cyan accent.
var ThemeDefault = &Theme{
	Name:        "default",
	Title:       Color{R: 255, G: 255, B: 255, Bold: true},
	Input:       Color{R: 255, G: 255, B: 255},
	Placeholder: Color{R: 128, G: 128, B: 128},
	Hint:        Color{R: 128, G: 128, B: 128},
	Error:       Color{R: 255, G: 85, B: 85, Bold: true},
	Option:      Color{R: 200, G: 200, B: 200},
	Selected:    Color{R: 0, G: 255, B: 255, Bold: true},
	Accent:      Color{R: 0, G: 255, B: 255, Bold: true},
	Muted:       Color{R: 128, G: 128, B: 128},
}

// ThemeDark is a Dracula-flavored dark theme.
var ThemeDark = &Theme{
	Name:        "dark",
	Title:       Color{R: 248, G: 248, B: 242, Bold: true},
	Input:       Color{R: 248, G: 248, B: 242},
	Placeholder: Color{R: 98, G: 114, B: 164},
	Hint:        Color{R: 98, G: 114, B: 164},
	Error:       Color{R: 255, G: 85, B: 85, Bold: true},
	Option:      Color{R: 189, G: 147, B: 249},
	Selected:    Color{R: 80, G: 250, B: 123, Bold: true},
	Accent:      Color{R: 255, G: 121, B: 198, Bold: true},
	Muted:       Color{R: 98, G: 114, B: 164},
}

// ThemeLight is a light-background theme.
var ThemeLight = &Theme{
	Name:        "light",
	Title:       Color{R: 36, G: 41, B: 46, Bold: true},
	Input:       Color{R: 36, G: 41, B: 46},
	Placeholder: Color{R: 149, G: 157, B: 165},
	Hint:        Color{R: 149, G: 157, B: 165},
	Error:       Color{R: 215, G: 58, B: 73, Bold: true},
	Option:      Color{R: 88, G: 96, B: 105},
	Selected:    Color{R: 40, G: 167, B: 69, Bold: true},
	Accent:      Color{R: 0, G: 119, B: 187, Bold: true},
	Muted:       Color{R: 149, G: 157, B: 165},
}

// ToANSI converts a Color to an ANSI true-color escape sequence.
func (c Color) ToANSI() string {
	var codes []string
	if c.Bold {
		codes = append(codes, "1")
	}
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

// glyphSet holds the characters used to draw prompt frames and indicators.
// Unicode-capable terminals get the richer set and a faster spinner.
type glyphSet struct {
	active   string // leading glyph while a prompt is active
	submit   string // leading glyph after submit
	cancel   string // leading glyph after cancel
	errMark  string // leading glyph for validation errors
	bar      string // vertical bar continuing a frame
	cursor   string // option cursor
	radioOn  string
	radioOff string
	checkOn  string
	checkOff string
	mask     string // password mask character
	info     string
	warn     string
	step     string

	spinnerFrames   []string
	spinnerInterval time.Duration
	progressOn      string
	progressOff     string
}

var unicodeGlyphs = glyphSet{
	active:   "◆",
	submit:   "◇",
	cancel:   "■",
	errMark:  "▲",
	bar:      "│",
	cursor:   "❯",
	radioOn:  "●",
	radioOff: "○",
	checkOn:  "◼",
	checkOff: "◻",
	mask:     "▪",
	info:     "●",
	warn:     "▲",
	step:     "◇",

	spinnerFrames:   []string{"◒", "◐", "◓", "◑"},
	spinnerInterval: 80 * time.Millisecond,
	progressOn:      "█",
	progressOff:     "░",
}

var asciiGlyphs = glyphSet{
	active:   "*",
	submit:   "o",
	cancel:   "x",
	errMark:  "!",
	bar:      "|",
	cursor:   ">",
	radioOn:  "(*)",
	radioOff: "( )",
	checkOn:  "[x]",
	checkOff: "[ ]",
	mask:     "*",
	info:     "i",
	warn:     "!",
	step:     "o",

	spinnerFrames:   []string{"-", "\\", "|", "/"},
	spinnerInterval: 120 * time.Millisecond,
	progressOn:      "#",
	progressOff:     "-",
}

// glyphsFor picks the glyph set matching the detected capabilities.
func glyphsFor(caps capabilities) glyphSet {
	if caps.unicode {
		return unicodeGlyphs
	}
	return asciiGlyphs
}

// style bundles everything frame builders need to paint text.
type style struct {
	theme  *Theme
	glyphs glyphSet
	color  bool
	width  int // terminal width for truncation
}

func newStyle(theme *Theme, caps capabilities, width int) *style {
	if theme == nil {
		theme = ThemeDefault
	}
	if width <= 0 {
		width = 80
	}
	return &style{
		theme:  theme,
		glyphs: glyphsFor(caps),
		color:  caps.color,
		width:  width,
	}
}

// paint wraps s in the ANSI sequence for c when colors are enabled.
func (st *style) paint(c Color, s string) string {
	if !st.color || s == "" {
		return s
	}
	return c.ToANSI() + s + Reset()
}

// invert renders s in reverse video, used to draw the text cursor.
func (st *style) invert(s string) string {
	if !st.color {
		return s
	}
	return "\x1b[7m" + s + "\x1b[27m"
}
