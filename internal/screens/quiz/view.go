package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	mm "github.com/abhisek/readychina/internal/matchmaker"
	"github.com/abhisek/readychina/internal/ui/components"
	"github.com/abhisek/readychina/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	if s.session.Finished() {
		body = s.viewResult(cw)
	} else {
		body = s.viewQuestion(cw)
	}

	if st := components.Status(s.status, s.statusErr, cw); st != "" {
		body += "\n\n" + st
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *QuizScreen) viewQuestion(cw int) string {
	heading := lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render("Which city should you move to?")

	progress := components.NewStepProgress(s.session.Step(), mm.NumQuestions, cw).View()

	sections := []string{heading, "", s.choice.View(cw), "", progress}
	if s.session.Step() > 1 {
		sections = append(sections, "", theme.Hint.Render("← Back"))
	}
	return strings.Join(sections, "\n")
}

func (s *QuizScreen) viewResult(cw int) string {
	res := mm.BuildResult(s.session)
	o := res.Outcome

	heading := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("You should move to ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Italic(true).Render(o.City)

	tagline := lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(o.Tagline + " " + o.Description)

	score := lipgloss.NewStyle().Foreground(theme.TextDim).Render("READINESS SCORE ") +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("%d%%", res.Score))

	roast := lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Italic(true).
		Render("\"" + o.Roast + "\"")

	image := lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.TextDim).
		Render("📷 " + o.ImageURL)

	label := "Share survival score"
	if s.copied {
		label = "Link copied!"
	}

	return strings.Join([]string{
		heading,
		"",
		components.Panel(tagline+"\n\n"+score+"\n\n"+roast, cw),
		image,
		"",
		components.Button(label, true),
	}, "\n")
}
