package wizard

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteIntroOutro(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	writeIntro(&out, testCaps(true), ThemeDefault, "my-app setup")
	writeOutro(&out, testCaps(true), ThemeDefault, "All done.")

	assert.Equal(t, "┌ my-app setup\n└ All done.\n", out.String())
}

func TestWriteIntroASCII(t *testing.T) {
	t.Parallel()

	caps := testCaps(true)
	caps.unicode = false

	var out bytes.Buffer
	writeIntro(&out, caps, ThemeDefault, "my-app setup")

	assert.Equal(t, "+ my-app setup\n", out.String())
}

func TestWriteNote(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	writeNote(&out, testCaps(true), ThemeDefault, "line one\nline two", "Next steps")

	got := out.String()
	assert.Contains(t, got, "Next steps")
	assert.Contains(t, got, "│ line one\n")
	assert.Contains(t, got, "│ line two\n")
}

func TestWriteNoteWithoutTitle(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	writeNote(&out, testCaps(true), ThemeDefault, "only body", "")

	assert.Equal(t, "│ only body\n", out.String())
}

func TestWriteLogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level logLevel
		glyph string
	}{
		{"info", logInfo, "●"},
		{"success", logSuccess, "◇"},
		{"warn", logWarn, "▲"},
		{"error", logError, "▲"},
		{"step", logStep, "◇"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			writeLog(&out, testCaps(true), ThemeDefault, tt.level, "something happened")

			assert.Equal(t, tt.glyph+" something happened\n", out.String())
		})
	}
}
