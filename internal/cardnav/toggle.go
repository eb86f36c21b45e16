package cardnav

import (
	"github.com/sirupsen/logrus"

	"github.com/bestpick/cardnav/internal/surface"
)

// TriggerKeys activate the trigger exactly like a pointer click.
//
//nolint:gochecknoglobals // Shared with the key map.
var TriggerKeys = []string{"enter", " "}

// NavState is the open/closed state. IsExpanded is the single source of truth
// for whether the panel is open; IsTogglePending is set while a close is
// animating and its completion has not fired yet.
type NavState struct {
	IsExpanded      bool
	IsTogglePending bool
}

// ToggleController owns NavState and the live animation handle.
type ToggleController struct {
	surface *surface.Surface
	handle  Handle
	state   NavState
	// hamburgerOpen follows intent immediately, not animation completion.
	hamburgerOpen bool
}

// State returns a copy of the current state.
func (c *ToggleController) State() NavState { return c.state }

// Toggle flips the panel.
//
// Collapsed: open intent shows at once and the timeline plays from the start.
// Expanded: close intent shows at once, but IsExpanded only turns false when
// the reverse finishes, so the cards stay rendered for the whole close.
// A toggle during a pending close reopens from where the close got to.
// Without a live handle Toggle does nothing.
func (c *ToggleController) Toggle() {
	h := c.handle
	if h == nil {
		return
	}
	switch {
	case !c.state.IsExpanded:
		c.hamburgerOpen = true
		c.setExpanded(true)
		h.Restart()
		logrus.Debug("cardnav: opening")
	case c.state.IsTogglePending:
		c.hamburgerOpen = true
		c.state.IsTogglePending = false
		h.OnReverseComplete(nil)
		h.Play()
		logrus.Debug("cardnav: close interrupted, reopening")
	default:
		c.hamburgerOpen = false
		c.beginClose(h)
		logrus.Debug("cardnav: closing")
	}
}

// beginClose registers the completion flip and reverses h.
func (c *ToggleController) beginClose(h Handle) {
	c.state.IsTogglePending = true
	h.OnReverseComplete(c.finishClose)
	h.Reverse()
}

func (c *ToggleController) finishClose() {
	c.state.IsTogglePending = false
	c.setExpanded(false)
	logrus.Debug("cardnav: closed")
}

// setExpanded writes IsExpanded and the content region's visibility with it.
func (c *ToggleController) setExpanded(v bool) {
	c.state.IsExpanded = v
	if content := c.surface.Content(); content != nil {
		content.Visible = v
		content.Interactive = v
	}
}

// install kills the current handle and makes h the live one. h may be nil.
func (c *ToggleController) install(h Handle) {
	if c.handle != nil {
		c.handle.Kill()
	}
	c.handle = h
}

// release kills the live handle and forgets it.
func (c *ToggleController) release() { c.install(nil) }
