// Command signup demonstrates a full prompt flow: intro, text, password,
// select, multi-select, confirm, tasks, outro. Canceling any prompt prints a
// notice and exits with code 1, following the caller contract.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nao1215/wizard"
	"github.com/spf13/pflag"
)

func main() {
	themeName := pflag.String("theme", "default", "color theme: default, dark, light")
	skipTasks := pflag.Bool("skip-tasks", false, "skip the demo task run")
	pflag.Parse()

	theme := wizard.ThemeDefault
	switch *themeName {
	case "dark":
		theme = wizard.ThemeDark
	case "light":
		theme = wizard.ThemeLight
	}

	ctx := context.Background()
	wizard.Intro("create-account")

	name, err := wizard.Text(ctx, wizard.TextOptions{
		Message:     "What is your name?",
		Placeholder: "anonymous",
		Theme:       theme,
		Validate: func(s string) error {
			if len(s) > 32 {
				return errors.New("32 characters max")
			}
			return nil
		},
	})
	exitOnCancel(err)

	_, err = wizard.Password(ctx, wizard.PasswordOptions{
		Message: "Choose a password",
		Theme:   theme,
		Validate: func(s string) error {
			if len(s) < 8 {
				return errors.New("at least 8 characters")
			}
			return nil
		},
	})
	exitOnCancel(err)

	plan, err := wizard.Select(ctx, wizard.SelectOptions[string]{
		Message: "Pick a plan",
		Theme:   theme,
		Options: []wizard.SelectOption[string]{
			{Value: "free", Hint: "no card required"},
			{Value: "pro", Hint: "$8/month"},
			{Value: "enterprise", Hint: "contact sales"},
		},
	})
	exitOnCancel(err)

	addons, err := wizard.MultiSelect(ctx, wizard.MultiSelectOptions[string]{
		Message:  "Enable add-ons",
		Theme:    theme,
		Required: false,
		Options: []wizard.SelectOption[string]{
			{Value: "backups"},
			{Value: "metrics"},
			{Value: "alerts"},
		},
	})
	exitOnCancel(err)

	ok, err := wizard.Confirm(ctx, wizard.ConfirmOptions{
		Message:      fmt.Sprintf("Create account %q on the %s plan?", name, plan),
		InitialValue: true,
		Theme:        theme,
	})
	exitOnCancel(err)
	if !ok {
		wizard.Outro("Nothing created.")
		return
	}

	if !*skipTasks {
		err = wizard.Tasks(ctx, []wizard.Task{
			{Title: "Creating account", Run: func(ctx context.Context) (string, error) {
				time.Sleep(800 * time.Millisecond)
				return "Account created", nil
			}},
			{Title: "Enabling add-ons", Run: func(ctx context.Context) (string, error) {
				time.Sleep(400 * time.Millisecond)
				return fmt.Sprintf("Enabled %d add-ons", len(addons)), nil
			}},
		})
		if wizard.IsCancel(err) {
			fmt.Println(wizard.CancelNotice())
			os.Exit(1)
		}
		if err != nil {
			wizard.Error(err.Error())
			os.Exit(2)
		}
	}

	wizard.Outro("You're all set.")
}

func exitOnCancel(err error) {
	if wizard.IsCancel(err) {
		fmt.Println(wizard.CancelNotice())
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
