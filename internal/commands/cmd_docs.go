package commands

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
)

//go:embed docs/usage.md
var usageDoc string

type DocsCmd struct {
	flags *Flags
	plain bool
}

// NewDocsCmd creates the docs command.
func NewDocsCmd(flags *Flags) *DocsCmd {
	return &DocsCmd{flags: flags}
}

// Register adds the docs command to the application.
func (cmd *DocsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "docs",
		Usage:       "Show usage and integration documentation",
		Description: "Renders the chime usage guide, covering the dispatch facade, tracked operations, and routing rules.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "print raw markdown without terminal rendering",
				Destination: &cmd.plain,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DocsCmd) run(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer

	if cmd.plain {
		_, err := fmt.Fprint(w, usageDoc)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(usageDoc)
	if err != nil {
		return fmt.Errorf("render docs: %w", err)
	}

	_, err = fmt.Fprint(w, out)
	return err
}
