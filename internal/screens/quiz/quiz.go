// Package quiz is the city matchmaker screen: three questions, then a
// result card with a shareable readiness score.
package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	mm "github.com/abhisek/readychina/internal/matchmaker"
	"github.com/abhisek/readychina/internal/router"
	"github.com/abhisek/readychina/internal/screen"
	"github.com/abhisek/readychina/internal/share"
	"github.com/abhisek/readychina/internal/store"
	"github.com/abhisek/readychina/internal/ui/components"
	"github.com/abhisek/readychina/internal/ui/layout"
)

// copiedFor is how long "Link copied!" stays on the share button.
const copiedFor = 2 * time.Second

// QuizCloser is told when the quiz screen closes.
type QuizCloser interface {
	CloseQuiz(ctx context.Context)
}

// Config wires the screen to the rest of the app.
type Config struct {
	Closer      QuizCloser      // may be nil
	Events      store.EventRepo // may be nil
	Clipboard   share.Clipboard
	ShareURL    string
	AnswerDelay time.Duration
	Log         zerolog.Logger
}

type advanceMsg struct {
	sessionID string
	next      mm.Session
}

type copiedExpiredMsg struct {
	gen int
}

type resultSavedMsg struct {
	err error
}

// QuizScreen runs one matchmaker session.
type QuizScreen struct {
	cfg     Config
	session mm.Session
	choice  components.Choice

	advancing bool // an answer is showing before the step changes
	saved     bool // result written for this session
	copied    bool
	copyGen   int
	status    string
	statusErr bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscapeHandler = (*QuizScreen)(nil)

// New opens a fresh session.
func New(cfg Config) *QuizScreen {
	if cfg.Clipboard == nil {
		cfg.Clipboard = share.SystemClipboard{}
	}
	s := &QuizScreen{
		cfg:     cfg,
		session: mm.Start(),
	}
	s.cfg.Log = cfg.Log.With().Str("screen", "quiz").Str("session", s.session.ID).Logger()
	s.syncChoice()
	return s
}

// Session returns the current engine state.
func (s *QuizScreen) Session() mm.Session {
	return s.session
}

func (s *QuizScreen) Init() tea.Cmd {
	s.cfg.Log.Debug().Msg("quiz opened")
	return nil
}

func (s *QuizScreen) Title() string {
	return "City Matchmaker"
}

func (s *QuizScreen) HandlesEscape() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.Finished() {
		return []layout.KeyHint{
			{Key: "S", Description: "Share score"},
			{Key: "B", Description: "Back"},
			{Key: "Esc", Description: "Close"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "1/2", Description: "Pick"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
	}
	if s.session.Step() > 1 {
		hints = append(hints, layout.KeyHint{Key: "B", Description: "Back"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Close"})
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if !s.advancing || msg.sessionID != s.session.ID {
			return s, nil
		}
		return s, s.apply(msg.next)

	case copiedExpiredMsg:
		if msg.gen == s.copyGen {
			s.copied = false
		}
		return s, nil

	case resultSavedMsg:
		if msg.err != nil {
			s.cfg.Log.Warn().Err(msg.err).Msg("save quiz result")
		}
		return s, nil

	case components.ChoiceMadeMsg:
		// A pick made on a step the user has since left is dropped.
		if msg.ID != s.session.Step() {
			return s, nil
		}
		return s, s.selectOption(msg.Index)

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "esc" {
		return s.close()
	}
	if s.advancing {
		return nil
	}

	switch key {
	case "b", "left", "backspace":
		return s.back()
	}

	if s.session.Finished() {
		if key == "s" || key == "enter" {
			return s.copyChallenge()
		}
		return nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return cmd
}

func (s *QuizScreen) selectOption(idx int) tea.Cmd {
	if s.advancing {
		return nil
	}
	q, ok := s.session.Current()
	if !ok || idx < 0 || idx >= len(q.Options) {
		return nil
	}

	next, err := mm.Select(s.session, q.Ordinal, q.Options[idx].Tag)
	if err != nil {
		s.cfg.Log.Warn().Err(err).Int("step", q.Ordinal).Msg("select rejected")
		return nil
	}

	// Show the pick before moving on.
	s.choice.Marked = idx
	s.choice.Cursor = idx
	if s.cfg.AnswerDelay <= 0 {
		return s.apply(next)
	}
	s.advancing = true
	id := s.session.ID
	return tea.Tick(s.cfg.AnswerDelay, func(time.Time) tea.Msg {
		return advanceMsg{sessionID: id, next: next}
	})
}

// apply makes next the current session and logs a first completion.
func (s *QuizScreen) apply(next mm.Session) tea.Cmd {
	s.advancing = false
	s.session = next
	s.syncChoice()
	if !s.session.Finished() || s.saved {
		return nil
	}
	s.saved = true
	return s.saveResult(mm.BuildResult(s.session))
}

func (s *QuizScreen) back() tea.Cmd {
	prev, err := mm.Back(s.session)
	if errors.Is(err, mm.ErrAtFirstStep) {
		return nil
	}
	if err != nil {
		s.cfg.Log.Warn().Err(err).Msg("back rejected")
		return nil
	}
	s.session = prev
	s.copied = false
	s.syncChoice()
	return nil
}

func (s *QuizScreen) close() tea.Cmd {
	s.advancing = false
	s.session = mm.Reset(s.session)
	if s.cfg.Closer != nil {
		s.cfg.Closer.CloseQuiz(context.Background())
	}
	s.cfg.Log.Debug().Msg("quiz closed")
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *QuizScreen) copyChallenge() tea.Cmd {
	res := mm.BuildResult(s.session)
	text := share.Challenge(res.Score, res.Outcome.City, s.cfg.ShareURL)
	if err := s.cfg.Clipboard.WriteAll(text); err != nil {
		s.status = "Couldn't copy: " + err.Error()
		s.statusErr = true
		s.cfg.Log.Warn().Err(err).Msg("copy challenge")
		return nil
	}
	s.status = ""
	s.statusErr = false
	s.copied = true
	s.copyGen++
	gen := s.copyGen
	return tea.Tick(copiedFor, func(time.Time) tea.Msg {
		return copiedExpiredMsg{gen: gen}
	})
}

func (s *QuizScreen) saveResult(res mm.Result) tea.Cmd {
	s.cfg.Log.Info().
		Str("answers", res.Answers).
		Str("outcome", string(res.Outcome.ID)).
		Int("score", res.Score).
		Msg("quiz finished")
	if s.cfg.Events == nil {
		return nil
	}
	events := s.cfg.Events
	return func() tea.Msg {
		err := events.AppendQuizResult(context.Background(), store.QuizResultData{
			SessionID: res.SessionID,
			Answers:   res.Answers,
			Outcome:   string(res.Outcome.ID),
			City:      res.Outcome.City,
			Score:     res.Score,
		})
		return resultSavedMsg{err: err}
	}
}

// syncChoice rebuilds the option list for the current step, marking any
// answer recorded before the user went back.
func (s *QuizScreen) syncChoice() {
	q, ok := s.session.Current()
	if !ok {
		s.choice = components.Choice{}
		return
	}
	opts := make([]string, len(q.Options))
	for i, o := range q.Options {
		opts[i] = o.Text
	}
	marked := -1
	if tag, ok := s.session.Selected(q.Ordinal); ok {
		marked = q.OptionIndex(tag)
	}
	s.choice = components.NewChoice(q.Title, opts, marked)
	s.choice.ID = q.Ordinal
}
