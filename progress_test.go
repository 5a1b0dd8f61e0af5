package wizard

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBarLifecycle(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewProgressBar(4, WithOutput(&out), WithInterval(5*time.Millisecond))
	p.guard = &termGuard{}

	require.NoError(t, p.Start("Downloading"))
	time.Sleep(20 * time.Millisecond)

	p.Advance(2)
	time.Sleep(30 * time.Millisecond)

	p.Stop("Downloaded", 0)

	got := out.String()
	assert.Contains(t, got, "Downloading")
	assert.Contains(t, got, "0%")
	assert.Contains(t, got, "50%")
	assert.Contains(t, got, "Downloaded")
}

func TestProgressBarAdvanceClamps(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewProgressBar(10, WithOutput(&out))
	p.guard = &termGuard{}

	p.Advance(25)
	assert.Equal(t, 10, p.current)

	p.Advance(-100)
	assert.Equal(t, 0, p.current)
}

func TestProgressBarZeroTotal(t *testing.T) {
	t.Parallel()

	p := NewProgressBar(0)
	assert.Equal(t, 1, p.total)
}

func TestProgressBarStopIsIdempotent(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewProgressBar(3, WithOutput(&out), WithInterval(5*time.Millisecond))
	p.guard = &termGuard{}

	require.NoError(t, p.Start("working"))
	p.Stop("done", 0)

	before := out.Len()
	p.Stop("done again", 0)
	assert.Equal(t, before, out.Len())
}

func TestProgressBarStartWhileTerminalHeld(t *testing.T) {
	t.Parallel()

	g := &termGuard{}
	release, err := g.acquire()
	require.NoError(t, err)
	defer release()

	var out bytes.Buffer
	p := NewProgressBar(3, WithOutput(&out))
	p.guard = g

	require.ErrorIs(t, p.Start("working"), ErrSessionActive)
}
