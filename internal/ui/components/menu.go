package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/readychina/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label string
	// HoverLabel replaces Label while the item is highlighted, if set.
	HoverLabel string
	Action     func() tea.Cmd
	Disabled   bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first enabled item highlighted.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.firstEnabled()
	return m
}

func (m Menu) firstEnabled() int {
	for i, item := range m.Items {
		if !item.Disabled {
			return i
		}
	}
	return 0
}

// SetItems swaps the items and keeps the cursor where it was when possible.
func (m Menu) SetItems(items []MenuItem) Menu {
	m.Items = items
	if m.Selected >= len(items) || (m.Selected < len(items) && items[m.Selected].Disabled) {
		m.Selected = m.firstEnabled()
	}
	return m
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu as a column of pill buttons of the given width.
func (m Menu) View(width int) string {
	selected := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary)

	normal := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	disabled := normal.Foreground(theme.TextDim)

	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			buttons = append(buttons, disabled.Render(item.Label))
		case i == m.Selected:
			label := item.Label
			if item.HoverLabel != "" {
				label = item.HoverLabel
			}
			buttons = append(buttons, selected.Render("▸ "+label))
		default:
			buttons = append(buttons, normal.Render(item.Label))
		}
	}
	return strings.Join(buttons, "\n")
}
