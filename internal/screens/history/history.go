package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	mm "github.com/abhisek/readychina/internal/matchmaker"
	"github.com/abhisek/readychina/internal/router"
	"github.com/abhisek/readychina/internal/screen"
	"github.com/abhisek/readychina/internal/store"
	"github.com/abhisek/readychina/internal/ui/layout"
	"github.com/abhisek/readychina/internal/ui/theme"
)

type historyLoadedMsg struct {
	Results []store.QuizResult
	Counts  map[string]int // outcome ID → finished quizzes
	Err     error
}

// HistoryScreen displays past quiz results and where people ended up.
type HistoryScreen struct {
	eventRepo store.EventRepo
	results   []store.QuizResult
	counts    map[string]int
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		results, err := s.eventRepo.QueryQuizResults(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Tallies are decoration; show the list even if they fail.
		counts, err := s.eventRepo.OutcomeCounts(ctx)
		if err != nil {
			counts = map[string]int{}
		}

		return historyLoadedMsg{Results: results, Counts: counts}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
			s.counts = msg.Counts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Find your city!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTallies()))
	b.WriteString("\n\n")

	for i, res := range s.results {
		dateStr := res.Timestamp.Format("Jan 02, 2006 15:04")

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %-10s  %d%% ready", prefix, dateStr, res.City, res.Score)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, detail := range s.details(res) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// renderTallies shows how many quizzes ended in each city.
func (s *HistoryScreen) renderTallies() string {
	var parts []string
	seen := make(map[mm.OutcomeID]bool)
	for _, o := range mm.AllOutcomes() {
		if seen[o.ID] {
			continue
		}
		seen[o.ID] = true
		n := s.counts[string(o.ID)]
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if n > 0 {
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s %d", o.City, n)))
	}
	return strings.Join(parts, "  ·  ")
}

// details lists the answers a result was built from.
func (s *HistoryScreen) details(res store.QuizResult) []string {
	var lines []string
	for i := 0; i < len(res.Answers); i++ {
		tag, ok := mm.ParseTag(res.Answers[i : i+1])
		if !ok {
			continue
		}
		q, ok := mm.QuestionAt(i + 1)
		if !ok {
			continue
		}
		idx := q.OptionIndex(tag)
		if idx < 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s → %s", q.Title, q.Options[idx].Text))
	}
	if o, ok := mm.GetOutcome(mm.OutcomeID(res.Outcome)); ok {
		lines = append(lines, o.Tagline)
	}
	if len(lines) == 0 {
		lines = append(lines, "No answers recorded")
	}
	return lines
}
