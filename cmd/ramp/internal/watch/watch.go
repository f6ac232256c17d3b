// Package watch shows a ramp running in real time in the terminal.
package watch

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/ramp/pkg/errors"
	"github.com/go-drift/ramp/pkg/preset"
	"github.com/go-drift/ramp/pkg/ramp"
)

// DefaultTick is the refresh interval used by Run.
const DefaultTick = 33 * time.Millisecond

const (
	barWidth     = 40
	historyWidth = 60
)

var (
	mauve    = lipgloss.Color("#cba6f7")
	sapphire = lipgloss.Color("#74c7ec")
	green    = lipgloss.Color("#a6e3a1")
	peach    = lipgloss.Color("#fab387")
	overlay  = lipgloss.Color("#6c7086")

	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(overlay).
			Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Foreground(mauve).Bold(true)
	barStyle   = lipgloss.NewStyle().Foreground(sapphire)
	mutedStyle = lipgloss.NewStyle().Foreground(overlay)

	statusStyles = map[ramp.Status]lipgloss.Style{
		ramp.StatusIdle:     mutedStyle,
		ramp.StatusRunning:  lipgloss.NewStyle().Foreground(green).Bold(true),
		ramp.StatusPaused:   lipgloss.NewStyle().Foreground(peach).Bold(true),
		ramp.StatusFinished: lipgloss.NewStyle().Foreground(sapphire),
	}
)

var sparks = []rune("▁▂▃▄▅▆▇█")

type tickMsg time.Time

// Model is the bubbletea model driving one preset.
type Model struct {
	r      *ramp.Ramp
	preset preset.Preset
	tick   time.Duration
	home   float64

	lo, hi  float64
	history []float64
	err     error
}

// New starts p on r and returns a model that polls it every tick.
func New(r *ramp.Ramp, p preset.Preset, tick time.Duration) (Model, error) {
	if tick <= 0 {
		tick = DefaultTick
	}
	m := Model{r: r, preset: p, tick: tick, home: r.Value()}
	if err := m.restart(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) restart() error {
	if m.preset.Origin == nil {
		m.r.SetValue(m.home)
	}
	if err := m.preset.Start(m.r); err != nil {
		return err
	}
	m.lo = math.Min(m.r.Origin(), m.r.Target())
	m.hi = math.Max(m.r.Origin(), m.r.Target())
	m.history = m.history[:0]
	return nil
}

func (m Model) schedule() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Ramp returns the ramp being watched.
func (m Model) Ramp() *ramp.Ramp { return m.r }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.schedule()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.r.Update()
		m.history = append(m.history, m.r.Value())
		if len(m.history) > historyWidth {
			m.history = m.history[len(m.history)-historyWidth:]
		}
		return m, m.schedule()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			if m.r.IsPaused() {
				m.r.Resume()
			} else {
				m.r.Pause()
			}
		case "r":
			if err := m.restart(); err != nil {
				m.err = err
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.preset.Name))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s  %g → %g over %s",
		m.r.LoopMode(), m.r.Origin(), m.r.Target(), m.r.Duration())))
	b.WriteString("\n\n")

	b.WriteString(barStyle.Render(bar(m.fraction(m.r.Value()), barWidth)))
	fmt.Fprintf(&b, " %8.3f\n", m.r.Value())
	b.WriteString(barStyle.Render(m.sparkline()))
	b.WriteString("\n\n")

	status := m.r.Status()
	b.WriteString(statusStyles[status].Render(status.String()))
	fmt.Fprintf(&b, "  %5.1f%%  cycle %d", m.r.Completion(), m.r.CycleCount())
	if m.r.Reversed() {
		b.WriteString(mutedStyle.Render("  reversed"))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(peach).Render(m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("space pause/resume · r restart · q quit"))
	return frameStyle.Render(b.String())
}

func (m Model) fraction(v float64) float64 {
	if m.hi == m.lo {
		return 1
	}
	return math.Max(0, math.Min(1, (v-m.lo)/(m.hi-m.lo)))
}

func (m Model) sparkline() string {
	out := make([]rune, len(m.history))
	for i, v := range m.history {
		out[i] = sparks[int(math.Round(m.fraction(v)*float64(len(sparks)-1)))]
	}
	return string(out)
}

func bar(fraction float64, width int) string {
	filled := int(math.Round(fraction * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Run watches p on a ramp that follows the wall clock until the user quits.
// A panic inside the model is reported and returned as an error.
func Run(p preset.Preset) (err error) {
	defer errors.Recover("watch.Run", func(pe *errors.PanicError) { err = pe })

	m, err := New(ramp.New(), p, DefaultTick)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
