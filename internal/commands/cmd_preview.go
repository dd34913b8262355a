package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/chime/internal/core/notify"
	"github.com/hay-kot/chime/internal/core/styles"
	"github.com/hay-kot/chime/pkg/iojson"
)

// notificationInput is the JSON wire form accepted by preview and
// emitted by compose --json.
type notificationInput struct {
	Kind       string `json:"kind"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message"`
	DurationMS int    `json:"duration_ms,omitempty"`
}

func (in notificationInput) toNotification() (notify.Notification, error) {
	kind := notify.Kind(in.Kind)
	if in.Kind == "" {
		kind = notify.KindInfo
	}
	if !kind.Valid() {
		return notify.Notification{}, fmt.Errorf("unknown kind %q", in.Kind)
	}
	if in.Message == "" {
		return notify.Notification{}, fmt.Errorf("message is required")
	}

	return notify.Notification{
		Kind:     kind,
		Title:    in.Title,
		Message:  in.Message,
		Duration: time.Duration(in.DurationMS) * time.Millisecond,
	}, nil
}

type PreviewCmd struct {
	flags  *Flags
	reader iojson.FileReader[notificationInput]
	width  int
}

// NewPreviewCmd creates the preview command.
func NewPreviewCmd(flags *Flags) *PreviewCmd {
	return &PreviewCmd{flags: flags}
}

// Register adds the preview command to the application.
func (cmd *PreviewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "preview",
		Usage:     "Render a notification from JSON",
		UsageText: "chime preview [options] < notification.json",
		Description: `Reads a notification from a JSON file or stdin and prints it the way
the playground would render it. Useful for checking themes and copy
without launching the TUI.`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
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

func (cmd *PreviewCmd) run(_ context.Context, c *cli.Command) error {
	input, err := cmd.reader.Read()
	if err != nil {
		return err
	}

	n, err := input.toNotification()
	if err != nil {
		return fmt.Errorf("invalid notification: %w", err)
	}

	_, err = fmt.Fprintln(c.Root().Writer, styles.Card(n, cmd.width))
	return err
}
