package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/bestpick/cardnav/internal/viewport"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.help.Width = x.Width
		// Subscribers reconcile synchronously, before the next View.
		m.window.Resize(viewport.Size{Width: x.Width, Height: x.Height})
		return m.animate()

	case tea.KeyMsg:
		return m.handleKey(x)

	case tea.MouseMsg:
		return m.handleMouse(x)

	case frameMsg:
		return m.advance(time.Time(x))

	case configMsg:
		if x.Config == nil {
			return m, nil
		}
		m.nav.Apply(x.Config)
		m.status = "config reloaded"
		logrus.WithField("path", x.Config.Path).Info("nav config reloaded")
		return m.animate()
	}

	return m, nil
}

// advance moves the animation forward by the wall time since the last frame.
func (m Model) advance(now time.Time) (Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}
	dt := frameInterval
	if !m.lastFrame.IsZero() {
		dt = min(max(now.Sub(m.lastFrame), 0), maxFrameDelta)
	}
	m.lastFrame = now
	if m.nav.Tick(dt) {
		return m, nextFrame()
	}
	m.ticking = false
	return m, nil
}
