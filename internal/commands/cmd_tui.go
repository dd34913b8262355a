package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/chime/internal/core/eventbus"
	"github.com/hay-kot/chime/internal/core/notify"
	"github.com/hay-kot/chime/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates the playground command.
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as the default action.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config

	store := notify.New(
		notify.WithCapacity(cfg.Toasts.Max),
		notify.WithDurations(cfg.Durations()),
	)

	// The facade binds for the lifetime of the program; teardown cancels
	// every live countdown.
	notify.Bind(store)
	defer notify.Unbind()

	bus := eventbus.NewBus()
	eventbus.NewRouter(store, cfg.RouteRules()).Register(bus)

	log.Debug().
		Int("capacity", cfg.Toasts.Max).
		Int("rules", len(cfg.Rules)).
		Msg("starting playground")

	m := tui.New(tui.Deps{Config: cfg, Store: store, Bus: bus})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run playground: %w", err)
	}
	return nil
}
