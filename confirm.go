package wizard

import (
	"context"
	"fmt"
	"strings"
)

// ConfirmOptions configures a Confirm prompt.
type ConfirmOptions struct {
	Message      string // prompt message (required)
	InitialValue bool   // highlighted choice on first render
	Active       string // label for true, defaults to "Yes"
	Inactive     string // label for false, defaults to "No"
	Theme        *Theme // nil for ThemeDefault
}

// Confirm asks a yes/no question. Left/right and up/down toggle the choice,
// 'y' and 'n' pick one directly, Return submits the current value.
func Confirm(ctx context.Context, opts ConfirmOptions) (bool, error) {
	sio, err := newSessionIO()
	if err != nil {
		return false, fmt.Errorf("failed to open terminal: %w", err)
	}
	defer sio.Close()
	return runConfirm(ctx, sio, opts)
}

func runConfirm(ctx context.Context, sio *sessionIO, opts ConfirmOptions) (bool, error) {
	if sio.caps.noInteraction {
		return opts.InitialValue, nil
	}

	ctrl := &confirmControl{
		st:       sio.style(opts.Theme),
		message:  opts.Message,
		active:   labelOr(opts.Active, "Yes"),
		inactive: labelOr(opts.Inactive, "No"),
		val:      opts.InitialValue,
	}
	return runSession[bool](ctx, sio, ctrl, nil)
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

type confirmControl struct {
	st       *style
	message  string
	active   string
	inactive string
	val      bool
}

func (c *confirmControl) handleKey(k Key) keyEvent {
	switch k.Name {
	case KeyLeft, KeyRight, KeyUp, KeyDown, KeyTab:
		c.val = !c.val
		return eventEdited
	case KeyRune:
		switch k.Rune {
		case 'y', 'Y':
			if c.val {
				return eventIgnored
			}
			c.val = true
			return eventEdited
		case 'n', 'N':
			if !c.val {
				return eventIgnored
			}
			c.val = false
			return eventEdited
		}
		return eventIgnored
	case KeyReturn:
		return eventSubmit
	default:
		return eventIgnored
	}
}

func (c *confirmControl) view(state State, errMsg string) string {
	switch state {
	case StateSubmit:
		return c.st.finalFrame(state, c.message, c.display())
	case StateCancel:
		return c.st.finalFrame(state, c.message, "")
	}

	g := c.st.glyphs
	yes := g.radioOff + " " + c.st.paint(c.st.theme.Option, c.active)
	no := g.radioOff + " " + c.st.paint(c.st.theme.Option, c.inactive)
	if c.val {
		yes = c.st.paint(c.st.theme.Selected, g.radioOn+" "+c.active)
	} else {
		no = c.st.paint(c.st.theme.Selected, g.radioOn+" "+c.inactive)
	}

	lines := []string{
		c.st.header(state, c.message),
		c.st.bodyLine(yes + " / " + no),
	}
	if state == StateError && errMsg != "" {
		lines = append(lines, c.st.errorLine(errMsg))
	}
	return strings.Join(lines, "\n")
}

func (c *confirmControl) value() bool { return c.val }

func (c *confirmControl) display() string {
	if c.val {
		return c.active
	}
	return c.inactive
}
