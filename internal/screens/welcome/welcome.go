package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/readychina/internal/router"
	"github.com/abhisek/readychina/internal/screen"
	"github.com/abhisek/readychina/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

// One big star with four small ones arcing around it.
var starRows = []string{
	"          ✦",
	"   ★          ✦",
	"              ",
	"              ✦",
	"          ✦",
}

// twinkle frames cycle on the small stars
var twinkleFrames = []string{"✦", "✧"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	headline     string
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by
// homeFactory. headline is shown under the banner.
func New(headline string, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		headline:    headline,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) renderStars() string {
	big := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	small := lipgloss.NewStyle().Foreground(theme.Accent)

	// Small stars appear after the first phase and then twinkle.
	twinkle := ""
	if w.elapsed >= phase1End {
		twinkle = twinkleFrames[w.tickCount%len(twinkleFrames)]
	}

	lines := make([]string, len(starRows))
	for i, row := range starRows {
		var b strings.Builder
		for _, r := range row {
			switch r {
			case '★':
				b.WriteString(big.Render("★"))
			case '✦':
				if twinkle == "" {
					b.WriteRune(' ')
				} else {
					b.WriteString(small.Render(twinkle))
				}
			default:
				b.WriteRune(r)
			}
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, w.renderStars())

	// Phase 3+: banner + headline
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		headline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(w.headline)
		sections = append(sections, headline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	return lipgloss.NewStyle().
		Background(theme.BgDark).
		Render(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content))
}
