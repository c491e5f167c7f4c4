package components

import (
	"math"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/harmonica"

	"github.com/abhisek/readychina/internal/ui/theme"
)

const counterFPS = 60

// CounterFrameMsg advances a Counter's spring by one frame.
type CounterFrameMsg struct{}

// Counter is a number that springs toward its target instead of jumping.
// It starts at zero, so the first target counts up from nothing.
type Counter struct {
	spring   harmonica.Spring
	pos, vel float64
	target   float64
	running  bool
}

// NewCounter returns a counter resting at zero.
func NewCounter() Counter {
	// Roughly stiffness 40, damping 20: overdamped, no bounce past target.
	return Counter{spring: harmonica.NewSpring(harmonica.FPS(counterFPS), 6.3, 1.6)}
}

// SetTarget points the counter at n and starts the animation if idle.
func (c Counter) SetTarget(n int) (Counter, tea.Cmd) {
	c.target = float64(n)
	if c.running || c.Settled() {
		return c, nil
	}
	c.running = true
	return c, frame()
}

// Update steps the spring on CounterFrameMsg.
func (c Counter) Update(msg tea.Msg) (Counter, tea.Cmd) {
	if _, ok := msg.(CounterFrameMsg); !ok {
		return c, nil
	}
	c.pos, c.vel = c.spring.Update(c.pos, c.vel, c.target)
	if math.Abs(c.target-c.pos) < 0.5 && math.Abs(c.vel) < 0.5 {
		c.pos, c.vel = c.target, 0
		c.running = false
		return c, nil
	}
	return c, frame()
}

// Value is the number currently displayed.
func (c Counter) Value() int {
	return int(math.Round(c.pos))
}

// Settled reports whether the display has reached the target.
func (c Counter) Settled() bool {
	return c.pos == c.target && c.vel == 0
}

// View renders the value in the brand color.
func (c Counter) View(format func(int) string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(format(c.Value()))
}

func frame() tea.Cmd {
	return tea.Tick(time.Second/counterFPS, func(time.Time) tea.Msg {
		return CounterFrameMsg{}
	})
}
