package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// SelectOption is one entry of a select or multi-select list. The option
// list is immutable for the session's lifetime.
type SelectOption[T comparable] struct {
	Value T
	Label string // defaults to fmt.Sprint(Value) when empty
	Hint  string // optional, rendered dimmed next to the label
}

func (o SelectOption[T]) label() string {
	if o.Label != "" {
		return o.Label
	}
	return fmt.Sprint(o.Value)
}

// SelectOptions configures a single-select prompt.
type SelectOptions[T comparable] struct {
	Message      string // prompt message (required)
	Options      []SelectOption[T]
	InitialValue T      // option highlighted on first render, if present
	Theme        *Theme // nil for ThemeDefault
}

// Select asks the user to pick exactly one option. Up and down move the
// highlight and wrap around at both ends; Return submits the highlighted
// option's value.
func Select[T comparable](ctx context.Context, opts SelectOptions[T]) (T, error) {
	var zero T
	sio, err := newSessionIO()
	if err != nil {
		return zero, fmt.Errorf("failed to open terminal: %w", err)
	}
	defer sio.Close()
	return runSelect(ctx, sio, opts)
}

func runSelect[T comparable](ctx context.Context, sio *sessionIO, opts SelectOptions[T]) (T, error) {
	var zero T
	if len(opts.Options) == 0 {
		return zero, errors.New("select requires at least one option")
	}

	cursor := 0
	for i, o := range opts.Options {
		if o.Value == opts.InitialValue {
			cursor = i
			break
		}
	}

	if sio.caps.noInteraction {
		return opts.Options[cursor].Value, nil
	}

	ctrl := &selectControl[T]{
		st:      sio.style(opts.Theme),
		message: opts.Message,
		options: opts.Options,
		cursor:  cursor,
	}
	return runSession[T](ctx, sio, ctrl, nil)
}

type selectControl[T comparable] struct {
	st      *style
	message string
	options []SelectOption[T]
	cursor  int
}

func (c *selectControl[T]) handleKey(k Key) keyEvent {
	n := len(c.options)
	switch k.Name {
	case KeyUp, KeyLeft:
		c.cursor = (c.cursor - 1 + n) % n
		return eventEdited
	case KeyDown, KeyRight:
		c.cursor = (c.cursor + 1) % n
		return eventEdited
	case KeyHome:
		if c.cursor == 0 {
			return eventIgnored
		}
		c.cursor = 0
		return eventEdited
	case KeyEnd:
		if c.cursor == n-1 {
			return eventIgnored
		}
		c.cursor = n - 1
		return eventEdited
	case KeyReturn:
		return eventSubmit
	default:
		return eventIgnored
	}
}

func (c *selectControl[T]) view(state State, errMsg string) string {
	switch state {
	case StateSubmit:
		return c.st.finalFrame(state, c.message, c.options[c.cursor].label())
	case StateCancel:
		return c.st.finalFrame(state, c.message, "")
	}

	lines := make([]string, 0, len(c.options)+2)
	lines = append(lines, c.st.header(state, c.message))
	for i, o := range c.options {
		lines = append(lines, c.st.bodyLine(c.optionLine(i, o, i == c.cursor, false, false)))
	}
	if state == StateError && errMsg != "" {
		lines = append(lines, c.st.errorLine(errMsg))
	}
	return strings.Join(lines, "\n")
}

func (c *selectControl[T]) value() T {
	return c.options[c.cursor].Value
}

// optionLine renders one option row shared by select and multi-select.
func (c *selectControl[T]) optionLine(i int, o SelectOption[T], hovered, multi, checked bool) string {
	st := c.st
	g := st.glyphs

	marker := g.radioOff
	if multi {
		marker = g.checkOff
		if checked {
			marker = g.checkOn
		}
	} else if hovered {
		marker = g.radioOn
	}

	pointer := strings.Repeat(" ", len([]rune(g.cursor)))
	if hovered {
		pointer = st.paint(st.theme.Accent, g.cursor)
	}

	label := st.optionLabel(o.label(), o.Hint)
	if hovered || (multi && checked) {
		label = st.paint(st.theme.Selected, label)
	} else {
		label = st.paint(st.theme.Option, label)
	}

	return pointer + " " + marker + " " + label
}

// MultiSelectOptions configures a multi-select prompt.
type MultiSelectOptions[T comparable] struct {
	Message       string // prompt message (required)
	Options       []SelectOption[T]
	InitialValues []T            // pre-toggled option values
	Required      bool           // empty submission is a validation failure
	Validate      Validator[[]T] // optional, runs after the Required check
	Theme         *Theme         // nil for ThemeDefault
}

// MultiSelect asks the user to toggle any number of options. Up and down
// move the highlight with wraparound, space or tab toggles membership at the
// highlight, Return submits the set of toggled values in option order.
//
// With Required set, submitting an empty set is treated as a validation
// failure: the session stays active and shows an error instead of
// submitting.
func MultiSelect[T comparable](ctx context.Context, opts MultiSelectOptions[T]) ([]T, error) {
	sio, err := newSessionIO()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	defer sio.Close()
	return runMultiSelect(ctx, sio, opts)
}

func runMultiSelect[T comparable](ctx context.Context, sio *sessionIO, opts MultiSelectOptions[T]) ([]T, error) {
	if len(opts.Options) == 0 {
		return nil, errors.New("multi-select requires at least one option")
	}

	selected := make(map[int]bool, len(opts.Options))
	for _, v := range opts.InitialValues {
		for i, o := range opts.Options {
			if o.Value == v {
				selected[i] = true
			}
		}
	}

	validate := func(values []T) error {
		if opts.Required && len(values) == 0 {
			return errors.New("please select at least one option")
		}
		if opts.Validate != nil {
			return opts.Validate(values)
		}
		return nil
	}

	if sio.caps.noInteraction {
		values := valuesOf(opts.Options, selected)
		if err := validate(values); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNonInteractive, err)
		}
		return values, nil
	}

	ctrl := &multiSelectControl[T]{
		selectControl: selectControl[T]{
			st:      sio.style(opts.Theme),
			message: opts.Message,
			options: opts.Options,
		},
		selected: selected,
	}
	return runSession[[]T](ctx, sio, ctrl, validate)
}

type multiSelectControl[T comparable] struct {
	selectControl[T]
	selected map[int]bool
}

func (c *multiSelectControl[T]) handleKey(k Key) keyEvent {
	switch k.Name {
	case KeySpace, KeyTab:
		c.selected[c.cursor] = !c.selected[c.cursor]
		return eventEdited
	default:
		return c.selectControl.handleKey(k)
	}
}

func (c *multiSelectControl[T]) view(state State, errMsg string) string {
	switch state {
	case StateSubmit:
		return c.st.finalFrame(state, c.message, c.displayValues())
	case StateCancel:
		return c.st.finalFrame(state, c.message, "")
	}

	lines := make([]string, 0, len(c.options)+2)
	lines = append(lines, c.st.header(state, c.message))
	for i, o := range c.options {
		lines = append(lines, c.st.bodyLine(c.optionLine(i, o, i == c.cursor, true, c.selected[i])))
	}
	if state == StateError && errMsg != "" {
		lines = append(lines, c.st.errorLine(errMsg))
	}
	return strings.Join(lines, "\n")
}

func (c *multiSelectControl[T]) value() []T {
	return valuesOf(c.options, c.selected)
}

func (c *multiSelectControl[T]) displayValues() string {
	labels := make([]string, 0, len(c.selected))
	for i, o := range c.options {
		if c.selected[i] {
			labels = append(labels, o.label())
		}
	}
	if len(labels) == 0 {
		return "(none)"
	}
	return strings.Join(labels, ", ")
}

// valuesOf collects toggled values in option order; membership only, the
// toggle order does not matter.
func valuesOf[T comparable](options []SelectOption[T], selected map[int]bool) []T {
	values := make([]T, 0, len(selected))
	for i, o := range options {
		if selected[i] {
			values = append(values, o.Value)
		}
	}
	return values
}
