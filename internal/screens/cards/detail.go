package cards

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/readychina/internal/content"
	"github.com/abhisek/readychina/internal/screen"
	"github.com/abhisek/readychina/internal/share"
	"github.com/abhisek/readychina/internal/ui/components"
	"github.com/abhisek/readychina/internal/ui/layout"
	"github.com/abhisek/readychina/internal/ui/theme"
)

// CardDetailScreen shows the comparison behind a single card.
type CardDetailScreen struct {
	card      content.DecisionCard
	detail    content.Detail
	clipboard share.Clipboard
	shareURL  string
	log       zerolog.Logger
	status    string
	statusErr bool
}

var _ screen.Screen = (*CardDetailScreen)(nil)
var _ screen.KeyHintProvider = (*CardDetailScreen)(nil)

func newCardDetail(card content.DecisionCard, detail content.Detail, cb share.Clipboard, shareURL string, log zerolog.Logger) *CardDetailScreen {
	return &CardDetailScreen{card: card, detail: detail, clipboard: cb, shareURL: shareURL, log: log}
}

func (d *CardDetailScreen) Init() tea.Cmd { return nil }
func (d *CardDetailScreen) Title() string { return d.card.Title }

func (d *CardDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "s", "enter":
			d.share()
		}
	}
	return d, nil
}

func (d *CardDetailScreen) share() {
	if err := d.clipboard.WriteAll(share.PageShare(d.shareURL).CopyText()); err != nil {
		d.status = "Couldn't copy: " + err.Error()
		d.statusErr = true
		d.log.Warn().Err(err).Str("card", d.card.ID).Msg("copy page share")
		return
	}
	d.status = "Link copied to clipboard!"
	d.statusErr = false
}

func (d *CardDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "S", Description: "Share"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *CardDetailScreen) View(width, height int) string {
	contentWidth := width - 8
	if contentWidth > 70 {
		contentWidth = 70
	}
	body := lipgloss.NewStyle().Width(contentWidth).Foreground(theme.Text).PaddingLeft(2)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + d.card.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.TextDim).
		PaddingLeft(2).
		Render(d.card.Description))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  IN CHINA"))
	b.WriteString("\n")
	b.WriteString(body.Render(d.detail.ChinaSide))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("  VS"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.USBlue).Bold(true).Render("  IN THE US"))
	b.WriteString("\n")
	b.WriteString(body.Render(d.detail.USSide))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.Accent).
		Italic(true).
		PaddingLeft(2).
		Render("\"" + d.detail.Hook + "\""))
	b.WriteString("\n\n")

	b.WriteString("  " + components.Button("Share with friends", true))
	if st := components.Status(d.status, d.statusErr, contentWidth); st != "" {
		b.WriteString("\n\n" + st)
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}
