package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/chime/internal/core/notify"
	"github.com/hay-kot/chime/internal/core/styles"
	"github.com/hay-kot/chime/pkg/iojson"
)

type ComposeCmd struct {
	flags  *Flags
	asJSON bool
	width  int
}

// NewComposeCmd creates the compose command.
func NewComposeCmd(flags *Flags) *ComposeCmd {
	return &ComposeCmd{flags: flags}
}

// Register adds the compose command to the application.
func (cmd *ComposeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "compose",
		Usage: "Interactively build a notification",
		Description: `Walks through a form for kind, title, message, and duration, then
prints the rendered notification. Use --json to emit the JSON wire
form accepted by 'chime preview' instead.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit JSON instead of a rendered preview",
				Destination: &cmd.asJSON,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "rendered card width",
				Value:       44,
				Destination: &cmd.width,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ComposeCmd) run(_ context.Context, c *cli.Command) error {
	input, err := cmd.prompt()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	if cmd.asJSON {
		return iojson.Write(c.Root().Writer, input)
	}

	n, err := input.toNotification()
	if err != nil {
		return fmt.Errorf("invalid notification: %w", err)
	}

	_, err = fmt.Fprintln(c.Root().Writer, styles.Card(n, cmd.width))
	return err
}

func (cmd *ComposeCmd) prompt() (notificationInput, error) {
	input := notificationInput{Kind: string(notify.KindInfo)}
	duration := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("info", string(notify.KindInfo)),
					huh.NewOption("success", string(notify.KindSuccess)),
					huh.NewOption("warning", string(notify.KindWarning)),
					huh.NewOption("error", string(notify.KindError)),
					huh.NewOption("pending", string(notify.KindPending)),
				).
				Value(&input.Kind),
			huh.NewInput().
				Title("Title").
				Description("Optional header line").
				Value(&input.Title),
			huh.NewText().
				Title("Message").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("message is required")
					}
					return nil
				}).
				Value(&input.Message),
			huh.NewInput().
				Title("Duration (ms)").
				Description("Empty for the kind's default").
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					v, err := strconv.Atoi(s)
					if err != nil || v < 0 {
						return fmt.Errorf("must be a non-negative integer")
					}
					return nil
				}).
				Value(&duration),
		),
	)

	if err := form.Run(); err != nil {
		return input, err
	}

	if duration != "" {
		input.DurationMS, _ = strconv.Atoi(duration)
	}
	return input, nil
}
