package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bestpick/cardnav/internal/cardnav"
	"github.com/bestpick/cardnav/internal/config"
	"github.com/bestpick/cardnav/internal/surface"
	"github.com/bestpick/cardnav/internal/viewport"
)

// Model is the root Bubble Tea model. It hosts one card nav and drives its
// animation from frame ticks.
type Model struct {
	nav    *cardnav.Nav
	window *viewport.Window

	width  int
	height int

	// frame loop state
	ticking   bool
	lastFrame time.Time

	// status is the footer line: the last link activated or config reload.
	status   string
	quitting bool

	// ui state
	help      help.Model
	progress  progress.Model
	showDebug bool

	// keymap for consistent keybindings
	keys keyMap
}

// NewModel constructs a Model with a mounted nav for cfg.
func NewModel(cfg *config.Config) Model {
	w := viewport.NewWindow(viewport.Size{Width: defaultWidth, Height: defaultHeight})
	nav := cardnav.New(surface.New(w, cfg), cfg.Ease)
	nav.Mount(w)
	return Model{
		nav:      nav,
		window:   w,
		width:    defaultWidth,
		height:   defaultHeight,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(debugBarWidth)),
		keys:     newKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.nav.Surface().Style.BrandText)
}

// Nav exposes the hosted nav.
func (m Model) Nav() *cardnav.Nav { return m.nav }

// Close unmounts the nav. The model must not be used afterwards.
func (m Model) Close() { m.nav.Unmount() }

// nextFrame schedules the next animation frame.
func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// animate starts the frame loop if the nav has something to play and no loop
// is running yet.
func (m Model) animate() (Model, tea.Cmd) {
	if m.ticking || !m.nav.Animating() {
		return m, nil
	}
	m.ticking = true
	m.lastFrame = time.Time{}
	return m, nextFrame()
}
