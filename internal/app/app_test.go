package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/readychina/internal/content"
	"github.com/abhisek/readychina/internal/router"
	"github.com/abhisek/readychina/internal/screen"
	"github.com/abhisek/readychina/internal/screens/home"
	"github.com/abhisek/readychina/internal/screens/welcome"
	"github.com/abhisek/readychina/internal/share"
	"github.com/abhisek/readychina/internal/vote"
)

type stubScreen struct {
	title   string
	escapes bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return "stub:" + s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) HandlesEscape() bool  { return s.escapes }

func testOptions(t *testing.T, skipSplash bool) Options {
	t.Helper()
	catalog, err := content.Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	return Options{
		Deps: home.Deps{
			Catalog:   catalog,
			Counter:   vote.NewCounter(vote.NewMemoryFlag(false), nil, zerolog.Nop()),
			Clipboard: &share.MemoryClipboard{},
			Log:       zerolog.Nop(),
		},
		SkipSplash: skipSplash,
	}
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestStartsOnSplash(t *testing.T) {
	m := newAppModel(testOptions(t, false))
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("active = %T, want welcome", m.router.Active())
	}

	m, cmd := update(m, tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	m, _ = update(m, cmd())
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("active = %T, want home", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestSkipSplash(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("active = %T, want home", m.router.Active())
	}
}

func TestEscPopsPushedScreen(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	m.router.Push(&stubScreen{title: "Cards"})

	m, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	m, _ = update(m, router.PopScreenMsg{})
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestEscAtRootDoesNothing(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	if _, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("esc on the root screen should be ignored")
	}
}

func TestEscForwardedToEscapeHandler(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	stub := &stubScreen{title: "Quiz", escapes: true}
	m.router.Push(stub)

	update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if len(stub.got) != 1 {
		t.Fatalf("screen got %d messages, want the esc key", len(stub.got))
	}
	if m.router.Depth() != 2 {
		t.Errorf("app should not pop for an escape handler, depth = %d", m.router.Depth())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestViewHeaderShowsCount(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	content := m.View().Content
	if !strings.Contains(content, "1,248 moving") {
		t.Error("header missing live count")
	}
	if !strings.Contains(content, "READY TO CHINA") {
		t.Error("header missing brand")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	m, _ = update(m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if strings.Contains(m.View().Content, "moving") {
		t.Error("small terminals should only show the size message")
	}
}
