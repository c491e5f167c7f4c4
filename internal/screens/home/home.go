package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/readychina/internal/content"
	"github.com/abhisek/readychina/internal/router"
	"github.com/abhisek/readychina/internal/screen"
	"github.com/abhisek/readychina/internal/screens/cards"
	"github.com/abhisek/readychina/internal/screens/history"
	"github.com/abhisek/readychina/internal/screens/quiz"
	"github.com/abhisek/readychina/internal/share"
	"github.com/abhisek/readychina/internal/store"
	"github.com/abhisek/readychina/internal/ui/components"
	"github.com/abhisek/readychina/internal/ui/layout"
	"github.com/abhisek/readychina/internal/ui/theme"
	"github.com/abhisek/readychina/internal/vote"
)

// Deps is everything the home screen and the screens it opens need.
type Deps struct {
	Catalog     *content.Catalog
	Counter     *vote.Counter
	Events      store.EventRepo // nil disables history
	Clipboard   share.Clipboard
	ShareURL    string
	AnswerDelay time.Duration
	QuizDelay   time.Duration
	Log         zerolog.Logger
	Now         func() time.Time
}

type openQuizMsg struct{}

// HomeScreen is the landing view: counter, vote button and the way into
// every other screen.
type HomeScreen struct {
	deps      Deps
	menu      components.Menu
	counter   components.Counter
	status    string
	statusErr bool
	quizOpen  bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.Clipboard == nil {
		deps.Clipboard = share.SystemClipboard{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	h := &HomeScreen{
		deps:    deps,
		counter: components.NewCounter(),
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	site := h.deps.Catalog.Site()
	c := h.deps.Counter

	var voteItem components.MenuItem
	switch {
	case c.HasVoted():
		voteItem = components.MenuItem{Label: site.CTACancel, Action: h.cancelVote}
	case c.Pending():
		voteItem = components.MenuItem{Label: site.CTAJoin, Disabled: true}
	default:
		voteItem = components.MenuItem{Label: site.CTAJoin, HoverLabel: site.CTAJoinHover, Action: h.countMeIn}
	}

	items := []components.MenuItem{
		voteItem,
		{Label: site.CTAShare, Action: h.sharePage},
		{Label: "Convince me", Action: func() tea.Cmd {
			scr := cards.New(h.deps.Catalog, h.deps.Clipboard, h.deps.ShareURL, h.deps.Log)
			return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
		}},
	}
	if h.deps.Events != nil {
		items = append(items, components.MenuItem{Label: "History", Action: func() tea.Cmd {
			scr := history.New(h.deps.Events)
			return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
		}})
	}
	return append(items, components.MenuItem{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }})
}

func (h *HomeScreen) countMeIn() tea.Cmd {
	if !h.deps.Counter.CountMeIn(context.Background()) {
		return nil
	}
	cmd := h.retarget()
	open := func() tea.Msg { return openQuizMsg{} }
	if h.deps.QuizDelay > 0 {
		return tea.Batch(cmd, tea.Tick(h.deps.QuizDelay, func(time.Time) tea.Msg { return openQuizMsg{} }))
	}
	return tea.Batch(cmd, open)
}

func (h *HomeScreen) cancelVote() tea.Cmd {
	h.deps.Counter.Cancel(context.Background())
	h.status = ""
	return h.retarget()
}

func (h *HomeScreen) sharePage() tea.Cmd {
	text := share.PageShare(h.deps.ShareURL).CopyText()
	if err := h.deps.Clipboard.WriteAll(text); err != nil {
		h.status = "Couldn't copy: " + err.Error()
		h.statusErr = true
		h.deps.Log.Warn().Err(err).Msg("copy page share")
		return nil
	}
	h.status = "Link copied to clipboard!"
	h.statusErr = false
	return nil
}

func (h *HomeScreen) openQuiz() tea.Cmd {
	// The delay tick can land after the quiz already opened and closed.
	if h.quizOpen || !h.deps.Counter.Pending() {
		return nil
	}
	h.quizOpen = true
	scr := quiz.New(quiz.Config{
		Closer:      h.deps.Counter,
		Events:      h.deps.Events,
		Clipboard:   h.deps.Clipboard,
		ShareURL:    h.deps.ShareURL,
		AnswerDelay: h.deps.AnswerDelay,
		Log:         h.deps.Log,
	})
	return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
}

// refresh rebuilds the menu after the vote state changed.
func (h *HomeScreen) refresh() {
	h.menu = h.menu.SetItems(h.menuItems())
}

func (h *HomeScreen) retarget() tea.Cmd {
	var cmd tea.Cmd
	h.counter, cmd = h.counter.SetTarget(h.deps.Counter.Count())
	return cmd
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.retarget()
}

// Resume runs when the quiz or another screen above home is closed. A
// quiz still pending here had its delay tick land on the screen above, so
// it opens now.
func (h *HomeScreen) Resume() tea.Cmd {
	h.quizOpen = false
	h.refresh()
	cmd := h.retarget()
	if h.deps.Counter.Pending() {
		return tea.Batch(cmd, h.openQuiz())
	}
	return cmd
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.CounterFrameMsg:
		var cmd tea.Cmd
		h.counter, cmd = h.counter.Update(msg)
		return h, cmd
	case openQuizMsg:
		return h, h.openQuiz()
	case tea.KeyMsg:
		h.status = ""
		m, cmd := h.menu.Update(msg)
		// Actions may have changed the vote state; rebuild on the moved cursor.
		h.menu = m.SetItems(h.menuItems())
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	site := h.deps.Catalog.Site()
	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height + 6)

	var sections []string

	if !compact {
		sections = append(sections, components.GradientText(site.Headline))
	}

	count := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(h.counter.View(layout.FormatCount))
	caption := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).
		Render(site.CounterCaption)
	sections = append(sections, count+"\n"+caption)

	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(h.menu.View(32)))

	if st := components.Status(h.status, h.statusErr, cw); st != "" {
		sections = append(sections, st)
	}

	footer := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("© %d %s", h.deps.Now().Year(), site.Footer))
	sections = append(sections, footer)

	return components.PosterFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
