package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/readychina/internal/ui/theme"
)

// Choice is a single-pick option list. Marked is the option already chosen
// earlier, shown with a check; Cursor is the keyboard highlight.
type Choice struct {
	ID      int // echoed in ChoiceMadeMsg so stale picks can be told apart
	Title   string
	Options []string
	Cursor  int
	Marked  int // -1 when nothing was chosen before
}

// ChoiceMadeMsg reports that the user picked an option from the Choice
// with the given ID.
type ChoiceMadeMsg struct {
	ID    int
	Index int
}

// NewChoice creates a choice list. marked < 0 means no prior pick.
func NewChoice(title string, options []string, marked int) Choice {
	c := Choice{Title: title, Options: options, Marked: marked}
	if marked >= 0 && marked < len(options) {
		c.Cursor = marked
	}
	return c
}

// Update handles arrow navigation, number keys and enter.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", "space":
		return c, c.pick(c.Cursor)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(c.Options) {
				c.Cursor = idx
				return c, c.pick(idx)
			}
		}
	}
	return c, nil
}

func (c Choice) pick(idx int) tea.Cmd {
	id := c.ID
	return func() tea.Msg { return ChoiceMadeMsg{ID: id, Index: idx} }
}

// View renders the title and one bordered row per option.
func (c Choice) View(width int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Render(c.Title)

	rows := []string{title, ""}
	for i, opt := range c.Options {
		border := theme.Border
		fg := theme.TextDim
		if i == c.Cursor {
			border = theme.Text
			fg = theme.Text
		}
		mark := "  "
		if i == c.Marked {
			mark = theme.Checked.Render("✓ ")
		}
		row := lipgloss.NewStyle().
			Width(width).
			Foreground(fg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Render(fmt.Sprintf("%s%d. %s", mark, i+1, opt))
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}
