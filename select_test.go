package wizard

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorOptions() []SelectOption[string] {
	return []SelectOption[string]{
		{Value: "red", Label: "Red"},
		{Value: "green", Label: "Green", Hint: "recommended"},
		{Value: "blue", Label: "Blue"},
	}
}

func TestSelectPrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		initial string
		want    string
	}{
		{
			name:  "submit first option",
			input: "\r",
			want:  "red",
		},
		{
			name:  "down moves highlight",
			input: "\x1b[B\r",
			want:  "green",
		},
		{
			name:  "up from top wraps to last",
			input: "\x1b[A\r",
			want:  "blue",
		},
		{
			name:  "down past bottom wraps to first",
			input: "\x1b[B\x1b[B\x1b[B\r",
			want:  "red",
		},
		{
			name:  "end jumps to last",
			input: "\x1b[F\r",
			want:  "blue",
		},
		{
			name:  "home returns to first",
			input: "\x1b[B\x1b[B\x1b[H\r",
			want:  "red",
		},
		{
			name:    "initial value sets cursor",
			input:   "\r",
			initial: "green",
			want:    "green",
		},
		{
			name:    "unknown initial value falls back to first",
			input:   "\r",
			initial: "purple",
			want:    "red",
		},
		{
			name:  "runes are ignored",
			input: "zz\x1b[B\r",
			want:  "green",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			sio := newMockSessionIO(tt.input, &out, testCaps(true))

			got, err := runSelect(context.Background(), sio, SelectOptions[string]{
				Message:      "Pick a color:",
				Options:      colorOptions(),
				InitialValue: tt.initial,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectPromptRendersHint(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	sio := newMockSessionIO("\r", &out, testCaps(true))

	_, err := runSelect(context.Background(), sio, SelectOptions[string]{
		Message: "Pick a color:",
		Options: colorOptions(),
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "recommended")
}

func TestSelectPromptNoOptions(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	sio := newMockSessionIO("\r", &out, testCaps(true))

	_, err := runSelect(context.Background(), sio, SelectOptions[string]{Message: "Pick:"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one option")
}

func TestSelectPromptCancel(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	sio := newMockSessionIO("\x1b[B\x03", &out, testCaps(true))

	_, err := runSelect(context.Background(), sio, SelectOptions[string]{
		Message: "Pick a color:",
		Options: colorOptions(),
	})
	require.ErrorIs(t, err, ErrCanceled)
	assert.False(t, sio.term.(*mockTerminal).rawMode) // raw mode restored
}

func TestSelectPromptNonInteractive(t *testing.T) {
	t.Parallel()

	caps := testCaps(false)
	caps.noInteraction = true

	var out bytes.Buffer
	sio := newMockSessionIO("", &out, caps)

	got, err := runSelect(context.Background(), sio, SelectOptions[string]{
		Message:      "Pick a color:",
		Options:      colorOptions(),
		InitialValue: "blue",
	})
	require.NoError(t, err)
	assert.Equal(t, "blue", got)
}

func TestMultiSelectPrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		initial []string
		want    []string
	}{
		{
			name:  "space toggles and submits",
			input: " \r",
			want:  []string{"red"},
		},
		{
			name:  "values come back in option order",
			input: "\x1b[B\x1b[B \x1b[A \r",
			want:  []string{"green", "blue"},
		},
		{
			name:  "toggle twice deselects",
			input: "  \x1b[B \r",
			want:  []string{"green"},
		},
		{
			name:  "tab toggles like space",
			input: "\t\r",
			want:  []string{"red"},
		},
		{
			name:    "initial values preserved",
			input:   "\r",
			initial: []string{"blue", "red"},
			want:    []string{"red", "blue"},
		},
		{
			name:  "empty submission allowed when not required",
			input: "\r",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			sio := newMockSessionIO(tt.input, &out, testCaps(true))

			got, err := runMultiSelect(context.Background(), sio, MultiSelectOptions[string]{
				Message:       "Pick colors:",
				Options:       colorOptions(),
				InitialValues: tt.initial,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMultiSelectRequired(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	// First Return submits an empty set and must be rejected; toggling one
	// option and submitting again succeeds.
	sio := newMockSessionIO("\r \r", &out, testCaps(true))

	got, err := runMultiSelect(context.Background(), sio, MultiSelectOptions[string]{
		Message:  "Pick colors:",
		Options:  colorOptions(),
		Required: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"red"}, got)
	assert.Contains(t, out.String(), "please select at least one option")
}

func TestMultiSelectCustomValidator(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	sio := newMockSessionIO(" \x1b[B \r", &out, testCaps(true))

	got, err := runMultiSelect(context.Background(), sio, MultiSelectOptions[string]{
		Message: "Pick colors:",
		Options: colorOptions(),
		Validate: func(values []string) error {
			if len(values) > 2 {
				return assert.AnError
			}
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "green"}, got)
}

func TestMultiSelectNonInteractive(t *testing.T) {
	t.Parallel()

	caps := testCaps(false)
	caps.noInteraction = true

	var out bytes.Buffer
	sio := newMockSessionIO("", &out, caps)

	got, err := runMultiSelect(context.Background(), sio, MultiSelectOptions[string]{
		Message:       "Pick colors:",
		Options:       colorOptions(),
		InitialValues: []string{"green"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"green"}, got)
}

func TestMultiSelectNonInteractiveRequiredRejectsEmpty(t *testing.T) {
	t.Parallel()

	caps := testCaps(false)
	caps.noInteraction = true

	var out bytes.Buffer
	sio := newMockSessionIO("", &out, caps)

	_, err := runMultiSelect(context.Background(), sio, MultiSelectOptions[string]{
		Message:  "Pick colors:",
		Options:  colorOptions(),
		Required: true,
	})
	require.ErrorIs(t, err, ErrNonInteractive)
}
