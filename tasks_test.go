package wizard

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tasks spins up real spinners on the shared terminal guard, so these tests
// stay sequential.

func TestTasksRunsInOrder(t *testing.T) {
	var out bytes.Buffer
	var order []string

	err := Tasks(context.Background(), []Task{
		{Title: "Fetching manifest", Run: func(context.Context) (string, error) {
			order = append(order, "fetch")
			return "Manifest fetched", nil
		}},
		{Title: "Installing", Run: func(context.Context) (string, error) {
			order = append(order, "install")
			return "", nil
		}},
	}, WithOutput(&out), WithInterval(5*time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, []string{"fetch", "install"}, order)

	got := out.String()
	assert.Contains(t, got, "Manifest fetched")
	// Empty completion message keeps the title.
	assert.Contains(t, got, "Installing")
}

func TestTasksStopsOnError(t *testing.T) {
	var out bytes.Buffer
	ran := 0
	boom := errors.New("registry unreachable")

	err := Tasks(context.Background(), []Task{
		{Title: "first", Run: func(context.Context) (string, error) {
			ran++
			return "", boom
		}},
		{Title: "second", Run: func(context.Context) (string, error) {
			ran++
			return "", nil
		}},
	}, WithOutput(&out), WithInterval(5*time.Millisecond))

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, ran)
	assert.Contains(t, out.String(), "registry unreachable")
}

func TestTasksCancellation(t *testing.T) {
	var out bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())

	err := Tasks(ctx, []Task{
		{Title: "first", Run: func(ctx context.Context) (string, error) {
			cancel()
			return "", ctx.Err()
		}},
		{Title: "second", Run: func(context.Context) (string, error) {
			t.Fatal("second task must not run after cancellation")
			return "", nil
		}},
	}, WithOutput(&out), WithInterval(5*time.Millisecond))

	require.ErrorIs(t, err, ErrCanceled)
	assert.True(t, IsCancel(err))
}

func TestTasksSkipsNilRun(t *testing.T) {
	var out bytes.Buffer

	err := Tasks(context.Background(), []Task{
		{Title: "noop"},
	}, WithOutput(&out), WithInterval(5*time.Millisecond))

	require.NoError(t, err)
	assert.Zero(t, out.Len())
}
