// Package cardnav is the expand/collapse core of the card navigation header:
// it measures the open height, builds the open timeline, toggles between
// collapsed and expanded, and keeps the animation in step with resizes and
// config changes. All methods must be called from the UI goroutine.
package cardnav

import (
	"reflect"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bestpick/cardnav/internal/config"
	"github.com/bestpick/cardnav/internal/motion"
	"github.com/bestpick/cardnav/internal/surface"
	"github.com/bestpick/cardnav/internal/viewport"
)

// Nav wires the four components around one render tree.
type Nav struct {
	surface    *surface.Surface
	heights    HeightCalculator
	builder    *TimelineBuilder
	controller *ToggleController
	resize     *ResizeCoordinator

	easeName string
	mounted  bool
}

// Option customises a Nav.
type Option func(*Nav)

// WithTiming overrides the animation timing.
func WithTiming(t Timing) Option {
	return func(n *Nav) { n.builder.timing = t }
}

// New returns an unmounted Nav over s, easing with the named curve.
func New(s *surface.Surface, ease string, opts ...Option) *Nav {
	heights := HeightCalculator{surface: s}
	builder := &TimelineBuilder{
		surface: s,
		heights: heights,
		ease:    motion.MustEase(ease),
		timing:  DefaultTiming(),
	}
	controller := &ToggleController{surface: s}
	n := &Nav{
		surface:    s,
		heights:    heights,
		builder:    builder,
		controller: controller,
		resize:     &ResizeCoordinator{controller: controller, builder: builder, heights: heights},
		easeName:   ease,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Mount builds the first timeline and starts listening to w for resizes.
func (n *Nav) Mount(w *viewport.Window) {
	if n.mounted || !n.surface.Attached() {
		return
	}
	n.mounted = true
	n.controller.install(n.builder.Build())
	n.resize.Attach(w)
	logrus.WithField("cards", n.surface.Cards().Len()).Debug("cardnav: mounted")
}

// Unmount kills the live timeline, stops listening for resizes and detaches
// the tree. Later calls on the Nav are no-ops.
func (n *Nav) Unmount() {
	if !n.mounted {
		return
	}
	n.mounted = false
	n.resize.Detach()
	n.controller.release()
	n.surface.Detach()
	logrus.Debug("cardnav: unmounted")
}

// Mounted reports whether the Nav is live.
func (n *Nav) Mounted() bool { return n.mounted }

// Toggle opens or closes the panel.
func (n *Nav) Toggle() { n.controller.Toggle() }

// Tick advances the live timeline by dt and reports whether it is still
// running.
func (n *Nav) Tick(dt time.Duration) bool {
	h := n.controller.handle
	if h == nil {
		return false
	}
	return h.Advance(dt)
}

// Animating reports whether the live timeline needs more ticks.
func (n *Nav) Animating() bool {
	h := n.controller.handle
	return h != nil && h.Active()
}

// Progress is the live timeline's position, 0 when there is none.
func (n *Nav) Progress() float64 {
	if h := n.controller.handle; h != nil {
		return h.Progress()
	}
	return 0
}

// Height is the current measured open height.
func (n *Nav) Height() int { return n.heights.Height() }

// Apply takes a new config. The tree is restyled, and when the cards, the
// breakpoint or the ease changed, the timeline is reconciled the same way a
// resize would reconcile it.
func (n *Nav) Apply(cfg *config.Config) {
	if !n.mounted {
		return
	}
	n.surface.Style = surface.StyleFrom(cfg)

	changed := false
	if cfg.Layout.Breakpoint != n.surface.Breakpoint {
		n.surface.Breakpoint = cfg.Layout.Breakpoint
		changed = true
	}
	if cfg.Ease != n.easeName {
		n.easeName = cfg.Ease
		n.builder.ease = motion.MustEase(cfg.Ease)
		changed = true
	}
	if !slices.EqualFunc(n.cards(), cfg.Cards(), func(a, b config.Card) bool { return reflect.DeepEqual(a, b) }) {
		n.surface.SetCards(cfg.Cards())
		changed = true
	}
	if changed {
		logrus.Debug("cardnav: config changed, reconciling")
		n.resize.Reconcile()
	}
}

func (n *Nav) cards() []config.Card {
	views := n.surface.Cards().Views()
	out := make([]config.Card, 0, len(views))
	for _, v := range views {
		out = append(out, v.Card)
	}
	return out
}

// State returns the current NavState.
func (n *Nav) State() NavState { return n.controller.State() }

// IsExpanded reports whether the panel is open or still closing.
func (n *Nav) IsExpanded() bool { return n.controller.state.IsExpanded }

// IsHamburgerOpen reports the trigger glyph state, which follows intent.
func (n *Nav) IsHamburgerOpen() bool { return n.controller.hamburgerOpen }

// AriaExpanded is the expanded attribute of the trigger.
func (n *Nav) AriaExpanded() bool { return n.IsExpanded() }

// AriaHidden is the hidden attribute of the content region.
func (n *Nav) AriaHidden() bool { return !n.IsExpanded() }

// TriggerLabel is the accessible name of the trigger.
func (n *Nav) TriggerLabel() string {
	if n.IsExpanded() {
		return "Close menu"
	}
	return "Open menu"
}

// Surface exposes the render tree for hit testing and layout.
func (n *Nav) Surface() *surface.Surface { return n.surface }

// View renders the nav.
func (n *Nav) View() string {
	return n.surface.View(surface.Chrome{HamburgerOpen: n.IsHamburgerOpen()})
}
