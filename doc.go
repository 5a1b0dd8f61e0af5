// Package wizard provides interactive terminal prompt widgets: text input,
// confirmation, single- and multi-select, password entry, and timer-driven
// spinner and progress indicators.
//
// Every prompt runs a small state machine (initial, active, validating,
// error, submit, cancel) that consumes decoded key events, validates
// candidate values with optional slow validators, and redraws the screen
// incrementally without flicker. Cancellation (Ctrl+C, SIGINT, or context)
// is communicated with the ErrCanceled sentinel rather than a panic, and the
// terminal is always left with a visible cursor and its original input mode,
// whatever the exit path.
//
// # Basic usage
//
//	ctx := context.Background()
//
//	name, err := wizard.Text(ctx, wizard.TextOptions{
//		Message:     "What is your name?",
//		Placeholder: "anonymous",
//	})
//	if wizard.IsCancel(err) {
//		fmt.Println(wizard.CancelNotice())
//		os.Exit(1)
//	}
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ok, err := wizard.Confirm(ctx, wizard.ConfirmOptions{
//		Message:      "Continue?",
//		InitialValue: true,
//	})
//
// # Select prompts
//
// Select and MultiSelect are generic over the option value type:
//
//	flavor, err := wizard.Select(ctx, wizard.SelectOptions[string]{
//		Message: "Pick a flavor",
//		Options: []wizard.SelectOption[string]{
//			{Value: "vanilla"},
//			{Value: "chocolate", Hint: "popular"},
//			{Value: "pistachio"},
//		},
//	})
//
// Cursor movement wraps at both ends; multi-select toggles membership with
// space or tab and can require a non-empty selection.
//
// # Validation
//
// Validators run off the event loop, so slow checks do not freeze the
// prompt. Keys pressed while a validation is pending are buffered and
// replayed in order after it settles. A validation failure keeps the
// session active and shows the message; it never terminates the prompt.
//
//	_, err := wizard.Text(ctx, wizard.TextOptions{
//		Message: "Port",
//		Validate: func(s string) error {
//			if _, err := strconv.Atoi(s); err != nil {
//				return errors.New("must be a number")
//			}
//			return nil
//		},
//	})
//
// # Indicators
//
//	s := wizard.NewSpinner()
//	_ = s.Start("Downloading")
//	s.Message("Still downloading")
//	s.Stop("Done", 0)
//
// Spinners and progress bars redraw on a fixed interval, stop cleanly on
// interrupt signals, and degrade to append-only output when stdout is not a
// terminal so CI logs stay linear.
//
// # Environment
//
// WIZARD_NO_INTERACTION (or CI) resolves prompts from their defaults without
// asking. WIZARD_ASCII forces the ASCII glyph set; WIZARD_NO_COLOR and the
// conventional NO_COLOR disable ANSI colors. None of these change
// state-machine behavior, only glyph and color choices.
package wizard
