// Package cards shows the "convince me" grid of decision cards and the
// China vs. US comparison behind each one.
package cards

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/readychina/internal/content"
	"github.com/abhisek/readychina/internal/router"
	"github.com/abhisek/readychina/internal/screen"
	"github.com/abhisek/readychina/internal/share"
	"github.com/abhisek/readychina/internal/ui/components"
	"github.com/abhisek/readychina/internal/ui/layout"
	"github.com/abhisek/readychina/internal/ui/theme"
)

const (
	columns    = 2
	tileHeight = 4 // border + title + description line
)

// CardsScreen displays the decision cards two to a row.
type CardsScreen struct {
	catalog      *content.Catalog
	cards        []content.DecisionCard
	clipboard    share.Clipboard
	shareURL     string
	log          zerolog.Logger
	cursor       int
	scrollOffset int // in grid rows
}

var _ screen.Screen = (*CardsScreen)(nil)
var _ screen.KeyHintProvider = (*CardsScreen)(nil)

// New creates a new CardsScreen over the catalog's cards.
func New(catalog *content.Catalog, cb share.Clipboard, shareURL string, log zerolog.Logger) *CardsScreen {
	if cb == nil {
		cb = share.SystemClipboard{}
	}
	return &CardsScreen{
		catalog:   catalog,
		cards:     catalog.Cards(),
		clipboard: cb,
		shareURL:  shareURL,
		log:       log,
	}
}

func (s *CardsScreen) Init() tea.Cmd {
	return nil
}

func (s *CardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-columns)
		case "down", "j":
			s.moveCursor(columns)
		case "left", "h":
			s.moveCursor(-1)
		case "right", "l", "tab":
			s.moveCursor(1)
		case "enter":
			return s, s.openCard()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// Cursor returns the index of the highlighted card.
func (s *CardsScreen) Cursor() int {
	return s.cursor
}

func (s *CardsScreen) moveCursor(delta int) {
	next := s.cursor + delta
	if next < 0 || next >= len(s.cards) {
		return
	}
	s.cursor = next
}

func (s *CardsScreen) openCard() tea.Cmd {
	if len(s.cards) == 0 {
		return nil
	}
	card := s.cards[s.cursor]
	detail := newCardDetail(card, s.catalog.Detail(card.ID), s.clipboard, s.shareURL, s.log)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

// adjustScroll keeps the cursor's grid row inside the viewport.
func (s *CardsScreen) adjustScroll(visibleRows int) {
	if visibleRows <= 0 {
		return
	}
	row := s.cursor / columns
	if row < s.scrollOffset {
		s.scrollOffset = row
	}
	if row >= s.scrollOffset+visibleRows {
		s.scrollOffset = row - visibleRows + 1
	}
}

func (s *CardsScreen) View(width, height int) string {
	if len(s.cards) == 0 {
		return ""
	}
	cw := components.ContentWidth(width)
	tileWidth := cw / columns

	title := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(components.GradientText(s.catalog.Site().CardsTitle))

	// title + blank line + frame border
	visibleRows := (height - 4) / tileHeight
	if visibleRows < 1 {
		visibleRows = 1
	}
	s.adjustScroll(visibleRows)

	var rows []string
	totalRows := (len(s.cards) + columns - 1) / columns
	for r := s.scrollOffset; r < totalRows && r < s.scrollOffset+visibleRows; r++ {
		var tiles []string
		for c := 0; c < columns; c++ {
			i := r*columns + c
			if i >= len(s.cards) {
				break
			}
			tiles = append(tiles, s.renderTile(i, tileWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	more := ""
	if last := s.scrollOffset + visibleRows; last < totalRows {
		more = "\n" + theme.Hint.Render(fmt.Sprintf("%d more below", len(s.cards)-last*columns))
	}

	return components.PosterFrame(title+"\n\n"+strings.Join(rows, "\n")+more, width, height)
}

// renderTile renders one card as a bordered tile.
func (s *CardsScreen) renderTile(i, width int) string {
	card := s.cards[i]
	selected := i == s.cursor

	border := theme.Border
	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if selected {
		border = theme.Primary
		titleStyle = titleStyle.Foreground(theme.Primary)
	}

	inner := width - 4
	if inner < 8 {
		inner = 8
	}
	desc := truncate(card.Description, inner)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width - 2).
		Padding(0, 1).
		Render(titleStyle.Render(truncate(card.Title, inner)) + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(desc))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (s *CardsScreen) Title() string {
	return "Convince Me"
}

// KeyHints returns the key binding hints for the footer.
func (s *CardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}
