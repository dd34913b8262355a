// Package tui implements the chime playground: a Bubble Tea program
// that renders the notification store and drives its countdowns.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/chime/internal/core/config"
	"github.com/hay-kot/chime/internal/core/eventbus"
	"github.com/hay-kot/chime/internal/core/notify"
	"github.com/hay-kot/chime/internal/core/styles"
)

const toastWidth = 44

type (
	toastTickMsg time.Time
	opDoneMsg    struct{ err error }
)

func scheduleToastTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// Deps are the collaborators the playground renders and drives.
type Deps struct {
	Config *config.Config
	Store  *notify.Store
	Bus    *eventbus.Bus
}

type keyMap struct {
	Success  key.Binding
	Error    key.Binding
	Warning  key.Binding
	Info     key.Binding
	Tracked  key.Binding
	Event    key.Binding
	Undoable key.Binding

	Up       key.Binding
	Down     key.Binding
	Pause    key.Binding
	Dismiss  key.Binding
	Activate key.Binding
	Clear    key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Success:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "success toast")),
		Error:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error toast")),
		Warning:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warning toast")),
		Info:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info toast")),
		Tracked:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tracked operation")),
		Event:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bus event")),
		Undoable: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "toast with action")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "select up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "select down")),
		Pause:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Dismiss:  key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "dismiss")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate action")),
		Clear:    key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "dismiss all")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Success, k.Error, k.Tracked, k.Pause, k.Dismiss, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Success, k.Error, k.Warning, k.Info},
		{k.Tracked, k.Event, k.Undoable, k.Clear},
		{k.Up, k.Down, k.Pause, k.Dismiss, k.Activate},
		{k.Help, k.Quit},
	}
}

// Model is the playground's Bubble Tea model.
type Model struct {
	store  *notify.Store
	bus    *eventbus.Bus
	buffer *ToastBuffer

	tickInterval time.Duration
	toasts       []notify.Toast
	selected     int

	spin spinner.Model
	bar  progress.Model
	keys keyMap
	help help.Model

	width  int
	height int

	demoSeq int
}

// New constructs the playground model and subscribes it to the store.
func New(deps Deps) Model {
	buffer := NewToastBuffer()
	deps.Store.Subscribe(buffer.Push)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.MutedStyle

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
	)
	bar.Width = toastWidth - 4

	return Model{
		store:        deps.Store,
		bus:          deps.Bus,
		buffer:       buffer,
		tickInterval: deps.Config.TickInterval(),
		spin:         sp,
		bar:          bar,
		keys:         defaultKeyMap(),
		help:         help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		m.buffer.WaitForSignal(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastTickMsg:
		m.store.Tick(time.Time(msg))
		m.refresh()
		return m, m.ensureToastTick()

	case drainToastsMsg:
		if toasts, ok := m.buffer.Drain(); ok {
			m.toasts = toasts
			m.clampSelection()
		}
		return m, tea.Batch(m.buffer.WaitForSignal(), m.ensureToastTick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case opDoneMsg:
		if msg.err != nil {
			log.Debug().Err(msg.err).Msg("tracked demo operation failed")
		}
		return m, m.ensureToastTick()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Success):
		notify.Success("Changes saved")
		m.refresh()
		return m, m.ensureToastTick()

	case key.Matches(msg, m.keys.Error):
		notify.Errorf("write failed: %v", errors.New("permission denied"))
		m.refresh()
		return m, m.ensureToastTick()

	case key.Matches(msg, m.keys.Warning):
		notify.Warning("Disk usage above 90%")
		m.refresh()
		return m, m.ensureToastTick()

	case key.Matches(msg, m.keys.Info):
		notify.Info("3 files synced")
		m.refresh()
		return m, m.ensureToastTick()

	case key.Matches(msg, m.keys.Undoable):
		notify.Success("Item archived",
			notify.WithTitle("Archive"),
			notify.WithAction("undo", func() { notify.Info("Archive undone") }),
		)
		m.refresh()
		return m, m.ensureToastTick()

	case key.Matches(msg, m.keys.Tracked):
		m.demoSeq++
		return m, tea.Batch(m.runTrackedDemo(m.demoSeq), m.ensureToastTick())

	case key.Matches(msg, m.keys.Event):
		m.demoSeq++
		m.publishDemoEvent(m.demoSeq)
		m.refresh()
		return m, m.ensureToastTick()

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.toasts)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if t, ok := m.selectedToast(); ok {
			m.store.TogglePause(t.ID)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		if t, ok := m.selectedToast(); ok {
			m.store.Dismiss(t.ID)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		if t, ok := m.selectedToast(); ok {
			m.store.Activate(t.ID)
			m.refresh()
		}
		return m, m.ensureToastTick()

	case key.Matches(msg, m.keys.Clear):
		m.store.DismissAll()
		m.refresh()
		return m, nil
	}

	return m, nil
}

// ensureToastTick returns a tick command when there are live toasts.
// Multiple concurrent tick chains are harmless: Tick advances by
// absolute elapsed time, so extra ticks just no-op. Chains naturally
// stop once the store drains.
func (m *Model) ensureToastTick() tea.Cmd {
	if m.store.Len() > 0 {
		return scheduleToastTick(m.tickInterval)
	}
	return nil
}

func (m *Model) refresh() {
	m.toasts = m.store.List()
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.toasts) {
		m.selected = len(m.toasts) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) selectedToast() (notify.Toast, bool) {
	if len(m.toasts) == 0 || m.selected >= len(m.toasts) {
		return notify.Toast{}, false
	}
	return m.toasts[m.selected], true
}

// runTrackedDemo simulates a long-running operation via the facade.
// Every third run fails so the error path stays visible.
func (m Model) runTrackedDemo(seq int) tea.Cmd {
	name := fmt.Sprintf("job-%d", seq)
	latency := time.Duration(600+200*(seq%4)) * time.Millisecond
	fail := seq%3 == 0

	return func() tea.Msg {
		_, err := notify.Promise(context.Background(), notify.TrackMessages[string]{
			Loading:     "Running " + name + "…",
			SuccessFunc: func(v string) string { return v + " finished" },
			ErrorFunc:   func(err error) string { return name + " failed: " + err.Error() },
		}, func(_ context.Context) (string, error) {
			time.Sleep(latency)
			if fail {
				return "", errors.New("connection reset")
			}
			return name, nil
		})
		return opDoneMsg{err: err}
	}
}

var demoTopics = []struct {
	topic   string
	message string
}{
	{"sync/index/rebuilt", "Search index rebuilt"},
	{"deploy/api/failed", "API rollout failed on 2 hosts"},
	{"billing/invoice/created", "Invoice #1042 created"},
}

func (m Model) publishDemoEvent(seq int) {
	d := demoTopics[seq%len(demoTopics)]
	m.bus.Publish(eventbus.Event{Topic: d.topic, Message: d.message})
}
