package wizard

import (
	"context"
	"fmt"
	"strings"
)

// TextOptions configures a Text prompt.
type TextOptions struct {
	Message      string            // prompt message (required)
	Placeholder  string            // shown dimmed while the value is empty
	DefaultValue string            // submitted when the value is empty
	InitialValue string            // pre-filled editable value
	Validate     Validator[string] // optional, sync or slow
	Theme        *Theme            // nil for ThemeDefault
}

// Text asks for a line of free-form input.
//
// An empty submission falls back to DefaultValue when one is set; with no
// default it is accepted as the empty string unless the validator rejects
// it. On cancellation the returned error matches ErrCanceled and the string
// is empty.
//
// Example:
//
//	name, err := wizard.Text(ctx, wizard.TextOptions{
//		Message:     "What is your name?",
//		Placeholder: "anonymous",
//		Validate: func(s string) error {
//			if strings.ContainsRune(s, ' ') {
//				return errors.New("no spaces, please")
//			}
//			return nil
//		},
//	})
//	if wizard.IsCancel(err) {
//		fmt.Println(wizard.CancelNotice())
//		os.Exit(1)
//	}
func Text(ctx context.Context, opts TextOptions) (string, error) {
	sio, err := newSessionIO()
	if err != nil {
		return "", fmt.Errorf("failed to open terminal: %w", err)
	}
	defer sio.Close()
	return runText(ctx, sio, opts)
}

func runText(ctx context.Context, sio *sessionIO, opts TextOptions) (string, error) {
	if sio.caps.noInteraction {
		def := opts.DefaultValue
		if opts.Validate != nil {
			if err := opts.Validate(def); err != nil {
				return "", fmt.Errorf("%w: default value rejected: %s", ErrNonInteractive, err)
			}
		}
		return def, nil
	}

	ctrl := &textControl{
		st:           sio.style(opts.Theme),
		interactive:  sio.caps.interactive,
		message:      opts.Message,
		placeholder:  opts.Placeholder,
		defaultValue: opts.DefaultValue,
		buf:          []rune(opts.InitialValue),
		cursor:       len([]rune(opts.InitialValue)),
	}
	return runSession(ctx, sio, ctrl, opts.Validate)
}

// PasswordOptions configures a Password prompt.
type PasswordOptions struct {
	Message  string            // prompt message (required)
	Validate Validator[string] // optional
	Theme    *Theme            // nil for ThemeDefault
}

// Password asks for secret input. Editing behaves exactly like Text, but
// every entered character is rendered as a fixed mask glyph and the raw
// value is never written to the terminal, including in the final frame.
func Password(ctx context.Context, opts PasswordOptions) (string, error) {
	sio, err := newSessionIO()
	if err != nil {
		return "", fmt.Errorf("failed to open terminal: %w", err)
	}
	defer sio.Close()
	return runPassword(ctx, sio, opts)
}

func runPassword(ctx context.Context, sio *sessionIO, opts PasswordOptions) (string, error) {
	if sio.caps.noInteraction {
		return "", ErrNonInteractive
	}

	ctrl := &textControl{
		st:          sio.style(opts.Theme),
		interactive: sio.caps.interactive,
		message:     opts.Message,
		masked:      true,
	}
	return runSession(ctx, sio, ctrl, opts.Validate)
}

// textControl is the shared behavior of Text and Password.
type textControl struct {
	st          *style
	interactive bool
	message     string
	placeholder string
	masked      bool

	defaultValue string
	buf          []rune
	cursor       int
}

func (c *textControl) handleKey(k Key) keyEvent {
	switch k.Name {
	case KeyRune, KeySpace:
		c.buf = append(c.buf[:c.cursor], append([]rune{k.Rune}, c.buf[c.cursor:]...)...)
		c.cursor++
		return eventEdited

	case KeyBackspace:
		if c.cursor == 0 {
			return eventIgnored // backspace at position 0 is a no-op
		}
		c.buf = append(c.buf[:c.cursor-1], c.buf[c.cursor:]...)
		c.cursor--
		return eventEdited

	case KeyDelete:
		if c.cursor >= len(c.buf) {
			return eventIgnored
		}
		c.buf = append(c.buf[:c.cursor], c.buf[c.cursor+1:]...)
		return eventEdited

	case KeyLeft:
		if c.cursor == 0 {
			return eventIgnored
		}
		c.cursor--
		return eventEdited

	case KeyRight:
		if c.cursor >= len(c.buf) {
			return eventIgnored
		}
		c.cursor++
		return eventEdited

	case KeyHome:
		if c.cursor == 0 {
			return eventIgnored
		}
		c.cursor = 0
		return eventEdited

	case KeyEnd:
		if c.cursor == len(c.buf) {
			return eventIgnored
		}
		c.cursor = len(c.buf)
		return eventEdited

	case KeyReturn:
		if len(c.buf) == 0 && c.defaultValue != "" {
			c.buf = []rune(c.defaultValue)
			c.cursor = len(c.buf)
		}
		return eventSubmit

	default:
		return eventIgnored
	}
}

func (c *textControl) view(state State, errMsg string) string {
	switch state {
	case StateSubmit:
		return c.st.finalFrame(state, c.message, c.display())
	case StateCancel:
		return c.st.finalFrame(state, c.message, "")
	}

	lines := []string{
		c.st.header(state, c.message),
		c.st.inputLine(c.buf, c.cursor, c.placeholder, c.masked, c.interactive),
	}
	if state == StateValidating {
		lines = append(lines, c.st.validatingLine())
	}
	if state == StateError && errMsg != "" {
		lines = append(lines, c.st.errorLine(errMsg))
	}
	return strings.Join(lines, "\n")
}

func (c *textControl) value() string {
	return string(c.buf)
}

// display is what the final frame shows: the value, or mask glyphs for
// passwords.
func (c *textControl) display() string {
	if c.masked {
		return strings.Repeat(c.st.glyphs.mask, len(c.buf))
	}
	return string(c.buf)
}
