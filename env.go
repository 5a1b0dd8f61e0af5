package wizard

import (
	"os"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/mattn/go-isatty"
)

// envPrefix namespaces the library's own environment switches, e.g.
// WIZARD_NO_INTERACTION=1.
const envPrefix = "wizard"

// envSettings holds the switches read from WIZARD_* environment variables.
type envSettings struct {
	// NoInteraction skips all prompts and resolves them from defaults
	// (WIZARD_NO_INTERACTION).
	NoInteraction bool `envconfig:"NO_INTERACTION"`
	// ASCII forces the ASCII glyph set even on Unicode-capable terminals
	// (WIZARD_ASCII).
	ASCII bool `envconfig:"ASCII"`
	// NoColor disables ANSI colors (WIZARD_NO_COLOR).
	NoColor bool `envconfig:"NO_COLOR"`
}

// capabilities describes what the surrounding terminal and environment
// support. Glyph and color choices depend on it; state-machine behavior does
// not.
type capabilities struct {
	interactive   bool // stdin and stdout are terminals and interaction is allowed
	noInteraction bool // prompts must resolve from defaults without asking
	unicode       bool // terminal can render the richer glyph set
	color         bool // ANSI colors enabled
}

// detectCapabilities probes environment variables and file descriptors.
// Honored signals: WIZARD_* switches, the conventional NO_COLOR and CI
// variables, TERM=dumb, and a UTF-8 locale for glyph selection.
func detectCapabilities() capabilities {
	var s envSettings
	_ = envconfig.Process(envPrefix, &s) // boolean parse errors fall back to defaults

	noInteraction := s.NoInteraction || os.Getenv("CI") != ""

	stdinTTY := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	dumb := os.Getenv("TERM") == "dumb"
	color := !s.NoColor && os.Getenv("NO_COLOR") == "" && !dumb && stdoutTTY

	return capabilities{
		interactive:   stdinTTY && stdoutTTY && !dumb && !noInteraction,
		noInteraction: noInteraction,
		unicode:       !s.ASCII && localeIsUTF8(),
		color:         color,
	}
}

// localeIsUTF8 reports whether the locale advertises UTF-8 output. Windows
// consoles handle Unicode regardless of locale variables.
func localeIsUTF8() bool {
	if runtime.GOOS == "windows" {
		return true
	}
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(name); v != "" {
			v = strings.ToUpper(v)
			return strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8")
		}
	}
	return false
}
