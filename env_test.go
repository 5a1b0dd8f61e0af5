package wizard

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// These tests mutate the process environment via t.Setenv, so none of them
// run in parallel.

// unsetenv removes a variable for the duration of the test. t.Setenv first so
// the original value is restored on cleanup.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func clearInteractionEnv(t *testing.T) {
	t.Helper()
	unsetenv(t, "WIZARD_NO_INTERACTION")
	unsetenv(t, "WIZARD_ASCII")
	unsetenv(t, "WIZARD_NO_COLOR")
	unsetenv(t, "CI")
	unsetenv(t, "NO_COLOR")
	t.Setenv("TERM", "xterm-256color")
}

func TestDetectCapabilitiesNoInteractionSwitch(t *testing.T) {
	clearInteractionEnv(t)
	t.Setenv("WIZARD_NO_INTERACTION", "true")

	caps := detectCapabilities()
	assert.True(t, caps.noInteraction)
	assert.False(t, caps.interactive)
}

func TestDetectCapabilitiesCI(t *testing.T) {
	clearInteractionEnv(t)
	t.Setenv("CI", "true")

	caps := detectCapabilities()
	assert.True(t, caps.noInteraction)
	assert.False(t, caps.interactive)
}

func TestDetectCapabilitiesDefault(t *testing.T) {
	clearInteractionEnv(t)

	caps := detectCapabilities()
	assert.False(t, caps.noInteraction)
}

func TestDetectCapabilitiesASCIISwitch(t *testing.T) {
	clearInteractionEnv(t)
	t.Setenv("LC_ALL", "en_US.UTF-8")
	t.Setenv("WIZARD_ASCII", "true")

	caps := detectCapabilities()
	assert.False(t, caps.unicode)
}

func TestDetectCapabilitiesUnicodeLocale(t *testing.T) {
	clearInteractionEnv(t)
	t.Setenv("LC_ALL", "en_US.UTF-8")

	caps := detectCapabilities()
	assert.True(t, caps.unicode)
}

func TestDetectCapabilitiesNoColor(t *testing.T) {
	clearInteractionEnv(t)
	t.Setenv("NO_COLOR", "1")

	caps := detectCapabilities()
	assert.False(t, caps.color)
}

func TestLocaleIsUTF8(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  bool
	}{
		{"LC_ALL UTF-8", "LC_ALL", "en_US.UTF-8", true},
		{"LANG UTF-8", "LANG", "C.UTF-8", true},
		{"LANG utf8 spelling", "LANG", "en_US.utf8", true},
		{"plain C locale", "LC_ALL", "C", false},
		{"latin1", "LANG", "en_US.ISO-8859-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetenv(t, "LC_ALL")
			unsetenv(t, "LC_CTYPE")
			unsetenv(t, "LANG")
			t.Setenv(tt.key, tt.value)

			assert.Equal(t, tt.want, localeIsUTF8())
		})
	}
}
