// Package styles provides shared lipgloss styles for CLI and TUI output.
package styles

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/chime/internal/core/notify"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette looks up a built-in palette by name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// Notification icons.
const (
	IconSuccess = "✔"
	IconError   = "✖"
	IconWarning = "▲"
	IconInfo    = "●"
	IconPending = "…"
	IconPaused  = "⏸"
)

// Styles rebuilt by SetTheme.
var (
	TitleStyle lipgloss.Style
	MutedStyle lipgloss.Style

	toastSuccessStyle lipgloss.Style
	toastErrorStyle   lipgloss.Style
	toastWarningStyle lipgloss.Style
	toastInfoStyle    lipgloss.Style
	toastPendingStyle lipgloss.Style

	kindSuccessText lipgloss.Style
	kindErrorText   lipgloss.Style
	kindWarningText lipgloss.Style
	kindInfoText    lipgloss.Style
)

func init() {
	SetTheme(themes[DefaultTheme])
}

// SetTheme applies a palette to all shared styles.
func SetTheme(p Palette) {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Foreground)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Muted)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	toastSuccessStyle = card.BorderForeground(p.Success)
	toastErrorStyle = card.BorderForeground(p.Error)
	toastWarningStyle = card.BorderForeground(p.Warning)
	toastInfoStyle = card.BorderForeground(p.Primary)
	toastPendingStyle = card.BorderForeground(p.Muted)

	kindSuccessText = lipgloss.NewStyle().Foreground(p.Success)
	kindErrorText = lipgloss.NewStyle().Foreground(p.Error)
	kindWarningText = lipgloss.NewStyle().Foreground(p.Warning)
	kindInfoText = lipgloss.NewStyle().Foreground(p.Primary)
}

// KindIcon returns the icon glyph for a notification kind.
func KindIcon(k notify.Kind) string {
	switch k {
	case notify.KindSuccess:
		return IconSuccess
	case notify.KindError:
		return IconError
	case notify.KindWarning:
		return IconWarning
	case notify.KindPending:
		return IconPending
	default:
		return IconInfo
	}
}

// KindText returns the foreground style for a notification kind.
func KindText(k notify.Kind) lipgloss.Style {
	switch k {
	case notify.KindSuccess:
		return kindSuccessText
	case notify.KindError:
		return kindErrorText
	case notify.KindWarning:
		return kindWarningText
	default:
		return kindInfoText
	}
}

// ToastStyle returns the bordered card style for a notification kind.
func ToastStyle(k notify.Kind) lipgloss.Style {
	switch k {
	case notify.KindSuccess:
		return toastSuccessStyle
	case notify.KindError:
		return toastErrorStyle
	case notify.KindWarning:
		return toastWarningStyle
	case notify.KindPending:
		return toastPendingStyle
	default:
		return toastInfoStyle
	}
}

// Card renders a notification as a bordered box of the given width.
// Extra lines (progress bars, action hints) are appended below the
// message inside the border.
func Card(n notify.Notification, width int, extra ...string) string {
	var b strings.Builder

	header := KindText(n.Kind).Render(KindIcon(n.Kind))
	if n.Title != "" {
		header += " " + TitleStyle.Render(n.Title)
	}
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(n.Message)

	for _, line := range extra {
		if line == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(line)
	}

	return ToastStyle(n.Kind).Width(width).Render(b.String())
}
