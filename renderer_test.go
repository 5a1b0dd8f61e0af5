package wizard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRendererInteractive(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := newRenderer(&out, true)

	assert.NoError(t, r.writeFrame("line1\nline2"))
	assert.Contains(t, out.String(), "\x1b[?25l", "cursor should be hidden on first write")
	assert.Contains(t, out.String(), "line1\r\nline2", "raw mode needs CRLF line breaks")
	assert.Equal(t, 2, r.lastLines)

	before := out.Len()
	assert.NoError(t, r.writeFrame("line1\nline2"))
	assert.Equal(t, before, out.Len(), "identical frame must not redraw")

	assert.NoError(t, r.writeFrame("replacement"))
	tail := out.String()[before:]
	assert.Contains(t, tail, "\x1b[1A\x1b[2K", "previous two-line frame must be erased")
	assert.Equal(t, 1, r.lastLines, "line tracking follows the new frame height")
}

func TestRendererFrameHeightGrowsAndShrinks(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := newRenderer(&out, true)

	assert.NoError(t, r.writeFrame("a"))
	assert.NoError(t, r.writeFrame("a\nb\nc")) // error line appears
	assert.Equal(t, 3, r.lastLines)

	before := out.Len()
	assert.NoError(t, r.writeFrame("a"))
	tail := out.String()[before:]
	// Erasing the three-line frame needs two cursor-up moves.
	assert.Equal(t, 2, strings.Count(tail, "\x1b[1A\x1b[2K"))
	assert.Equal(t, 1, r.lastLines)
}

func TestRendererRestoreIdempotent(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := newRenderer(&out, true)

	assert.NoError(t, r.writeFrame("x"))
	assert.NoError(t, r.restore())
	assert.NoError(t, r.restore())
	assert.Equal(t, 1, strings.Count(out.String(), "\x1b[?25h"), "cursor shown exactly once")
}

func TestRendererNonInteractive(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := newRenderer(&out, false)

	assert.NoError(t, r.writeFrame("first"))
	assert.NoError(t, r.writeFrame("first")) // duplicate suppressed
	assert.NoError(t, r.writeFrame("second"))
	assert.NoError(t, r.restore())

	got := out.String()
	assert.Equal(t, "first\nsecond\n", got, "append-only output, no escape codes")
	assert.NotContains(t, got, "\x1b", "no ANSI control on non-interactive surfaces")
}

func TestRendererRestoreWithoutWrites(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := newRenderer(&out, true)
	assert.NoError(t, r.restore())
	assert.Empty(t, out.String(), "nothing to restore when the cursor was never hidden")
}
