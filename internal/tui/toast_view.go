package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/chime/internal/core/notify"
	"github.com/hay-kot/chime/internal/core/styles"
)

func (m Model) View() string {
	header := styles.TitleStyle.Render("chime playground")
	counter := styles.MutedStyle.Render(fmt.Sprintf(" %d active", len(m.toasts)))
	helpView := m.help.View(m.keys)

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(helpView)
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	var body string
	if len(m.toasts) == 0 {
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			styles.MutedStyle.Render("no active notifications, press s, e, w, i, t, b or u"))
	} else {
		// Toast stack anchored to the lower-right, oldest at top.
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Right, lipgloss.Bottom, m.renderStack())
	}

	return header + counter + "\n" + body + "\n" + helpView
}

func (m Model) renderStack() string {
	rendered := make([]string, 0, len(m.toasts))
	for i, t := range m.toasts {
		rendered = append(rendered, m.renderToast(t, i == m.selected))
	}
	return strings.Join(rendered, "\n")
}

func (m Model) renderToast(t notify.Toast, selected bool) string {
	var extra []string

	switch {
	case t.Kind == notify.KindPending:
		extra = append(extra, m.spin.View()+" "+styles.MutedStyle.Render("in progress"))
	case t.Paused:
		extra = append(extra, styles.MutedStyle.Render(styles.IconPaused+" paused"))
	case !t.Sticky():
		extra = append(extra, m.bar.ViewAs(t.Progress()))
	}

	if t.Action != nil {
		extra = append(extra, styles.MutedStyle.Render("enter: "+t.Action.Label))
	}

	card := styles.Card(t.Notification, toastWidth, extra...)
	marker := "  "
	if selected {
		marker = styles.TitleStyle.Render("▌") + " "
	}

	// Prefix every card line so the selection marker spans the box.
	lines := strings.Split(card, "\n")
	for i, line := range lines {
		lines[i] = marker + line
	}
	return strings.Join(lines, "\n")
}
