//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestpick/cardnav/internal/config"
	"github.com/bestpick/cardnav/internal/surface"
	"github.com/bestpick/cardnav/internal/viewport"
)

func newTestModel(t *testing.T, width int) Model {
	t.Helper()
	m := NewModel(config.Default())
	t.Cleanup(m.Close)
	return send(t, m, tea.WindowSizeMsg{Width: width, Height: 40})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

// runFrames feeds frame messages 16ms apart until the frame loop stops.
func runFrames(t *testing.T, m Model) Model {
	t.Helper()
	now := time.Now()
	for i := 0; i < 1000 && m.ticking; i++ {
		now = now.Add(16 * time.Millisecond)
		m = send(t, m, frameMsg(now))
	}
	require.False(t, m.ticking, "frame loop should stop")
	return m
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func hamburgerCell(m Model) (int, int) {
	r := m.nav.Surface().Layout().Hamburger
	return r.X + 1, r.Y + 1
}

func TestNewModel_MountsCollapsed(t *testing.T) {
	m := NewModel(config.Default())
	defer m.Close()

	assert.True(t, m.Nav().Mounted())
	assert.False(t, m.Nav().IsExpanded())
	assert.Equal(t, viewport.Size{Width: defaultWidth, Height: defaultHeight}, m.window.Size())
	assert.NotNil(t, m.Init())
}

func TestUpdate_TriggerActivationsAreEquivalent(t *testing.T) {
	tests := []struct {
		name string
		msg  func(Model) tea.Msg
	}{
		{name: "enter", msg: func(Model) tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} }},
		{name: "space", msg: func(Model) tea.Msg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}} }},
		{name: "click", msg: func(m Model) tea.Msg { return click(hamburgerCell(m)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, 60)

			next, cmd := m.Update(tt.msg(m))
			m = next.(Model) //nolint:forcetypeassert // Update always returns Model.
			require.NotNil(t, cmd, "opening starts the frame loop")
			assert.True(t, m.ticking)
			assert.True(t, m.nav.IsExpanded())
			assert.True(t, m.nav.IsHamburgerOpen())

			m = runFrames(t, m)
			assert.Equal(t, 14, m.nav.Surface().Container().Rows())

			m = send(t, m, tt.msg(m))
			assert.False(t, m.nav.IsHamburgerOpen())
			assert.True(t, m.nav.IsExpanded())
			m = runFrames(t, m)
			assert.False(t, m.nav.IsExpanded())
			assert.Equal(t, surface.TopBarHeight, m.nav.Surface().Container().Rows())
		})
	}
}

func TestUpdate_MousePressIsIgnored(t *testing.T) {
	m := newTestModel(t, 60)
	x, y := hamburgerCell(m)
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.nav.IsExpanded())
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight})
	assert.False(t, m.nav.IsExpanded())
}

func TestUpdate_EscClosesOnlyWhenOpen(t *testing.T) {
	m := newTestModel(t, 60)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.nav.IsExpanded())

	m = runFrames(t, send(t, m, tea.KeyMsg{Type: tea.KeyEnter}))
	m = runFrames(t, send(t, m, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, m.nav.IsExpanded())
}

func TestUpdate_LinkClickReportsHref(t *testing.T) {
	m := newTestModel(t, 60)

	// Collapsed: the content region is not interactive.
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	l := m.nav.Surface().Layout()
	link := l.Cards[0].Links[0]
	m = send(t, m, click(link.X, link.Y))
	assert.Empty(t, m.status)

	m = runFrames(t, send(t, m, tea.KeyMsg{Type: tea.KeyEnter}))
	l = m.nav.Surface().Layout()
	link = l.Cards[0].Links[1]
	m = send(t, m, click(link.X, link.Y))
	assert.Equal(t, "About Careers → #careers", m.status)
	assert.True(t, m.nav.IsExpanded(), "links do not toggle the menu")
	assert.Contains(t, m.View(), "#careers")
}

func TestUpdate_ResizeWhileExpandedSnaps(t *testing.T) {
	m := newTestModel(t, 120)
	m = runFrames(t, send(t, m, tea.KeyMsg{Type: tea.KeyEnter}))
	require.Equal(t, surface.WideHeight, m.nav.Surface().Container().Rows())

	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	assert.Equal(t, 14, m.nav.Surface().Container().Rows())
	assert.False(t, m.ticking)
	assert.Equal(t, 60, m.help.Width)
}

func TestUpdate_ResizeDuringCloseKeepsFrameLoop(t *testing.T) {
	m := newTestModel(t, 60)
	m = runFrames(t, send(t, m, tea.KeyMsg{Type: tea.KeyEnter}))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, frameMsg(time.Now()))

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.True(t, m.ticking)
	m = runFrames(t, m)
	assert.False(t, m.nav.IsExpanded())
}

func TestUpdate_ConfigReload(t *testing.T) {
	m := newTestModel(t, 60)
	m = runFrames(t, send(t, m, tea.KeyMsg{Type: tea.KeyEnter}))

	cfg := config.Default()
	cfg.Items = cfg.Items[:2]
	cfg.Path = "/tmp/cardnav.yaml"
	m = send(t, m, configMsg{Config: cfg})

	assert.Equal(t, "config reloaded", m.status)
	assert.Equal(t, 2, m.nav.Surface().Cards().Len())
	assert.Equal(t, surface.TopBarHeight+6+surface.ContentPadding, m.nav.Surface().Container().Rows())

	same := send(t, m, configMsg{})
	assert.Equal(t, m.status, same.status)
}

func TestUpdate_FrameWithoutLoopIsIgnored(t *testing.T) {
	m := newTestModel(t, 60)
	next, cmd := m.Update(frameMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.False(t, next.(Model).ticking) //nolint:forcetypeassert // Update always returns Model.
}

func TestAdvance_CapsFrameDelta(t *testing.T) {
	m := newTestModel(t, 60)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	now := time.Now()
	m = send(t, m, frameMsg(now))
	before := m.nav.Progress()

	// A ten second stall advances by at most one capped frame.
	m = send(t, m, frameMsg(now.Add(10*time.Second)))
	assert.True(t, m.ticking)
	duration := 860 * time.Millisecond
	assert.InDelta(t, before+float64(maxFrameDelta)/float64(duration), m.nav.Progress(), 1e-6)
}

func TestUpdate_KeysAndQuit(t *testing.T) {
	m := newTestModel(t, 60)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, m.help.ShowAll)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	assert.True(t, m.showDebug)
	assert.Contains(t, m.View(), "expanded=false")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestView_FooterFollowsState(t *testing.T) {
	m := newTestModel(t, 60)
	view := m.View()
	assert.Contains(t, view, "Open menu")
	assert.Contains(t, view, "toggle menu")
	assert.Equal(t, 40, strings.Count(view, "\n")+1, "footer is pinned to the last row")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Close menu")
}

func TestPinFooter(t *testing.T) {
	assert.Equal(t, "a\nb", pinFooter("a", "b", 0))
	assert.Equal(t, "a\nb", pinFooter("a", "b", 2))
	assert.Equal(t, "a\n\n\nb", pinFooter("a", "b", 4))
}

func TestSnapshot(t *testing.T) {
	collapsed := Snapshot(config.Default(), viewport.Size{Width: 60, Height: 40}, false)
	assert.Contains(t, collapsed, "Best Pick")
	assert.NotContains(t, collapsed, "Careers")

	expanded := Snapshot(config.Default(), viewport.Size{Width: 60, Height: 40}, true)
	assert.Contains(t, expanded, "Careers")
	assert.Contains(t, expanded, "LinkedIn")
	// Frame margin + border + open container.
	assert.Equal(t, surface.NavMarginTop+2+14, strings.Count(expanded, "\n")+1)

	wide := Snapshot(config.Default(), viewport.Size{Width: 120, Height: 40}, true)
	assert.Contains(t, wide, config.DefaultCtaLabel)
}
