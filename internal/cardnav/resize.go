package cardnav

import (
	"github.com/sirupsen/logrus"

	"github.com/bestpick/cardnav/internal/viewport"
)

// ResizeCoordinator keeps the live timeline in step with geometry changes.
type ResizeCoordinator struct {
	controller *ToggleController
	builder    *TimelineBuilder
	heights    HeightCalculator
	sub        *viewport.Subscription
}

// Attach subscribes to resize events on w. A previous subscription is dropped.
func (r *ResizeCoordinator) Attach(w *viewport.Window) {
	r.Detach()
	r.sub = w.Subscribe(func(viewport.Size) { r.Reconcile() })
}

// Detach removes the resize subscription.
func (r *ResizeCoordinator) Detach() {
	r.sub.Unsubscribe()
	r.sub = nil
}

// Reconcile rebuilds the live timeline for the current geometry.
//
// Expanded: the container snaps to the new height without easing and the new
// timeline is parked at its end, so a later reverse closes from the new
// geometry. A close that was animating carries on from there. Collapsed: the
// timeline is rebuilt so the next open measures afresh.
func (r *ResizeCoordinator) Reconcile() {
	ctl := r.controller
	if ctl.handle == nil {
		return
	}
	state := ctl.state
	log := logrus.WithFields(logrus.Fields{
		"expanded": state.IsExpanded,
		"pending":  state.IsTogglePending,
		"class":    r.builder.surface.Class().String(),
	})

	if !state.IsExpanded {
		ctl.install(nil)
		ctl.install(r.builder.Build())
		log.Debug("cardnav: timeline rebuilt")
		return
	}

	height := r.heights.Height()
	if c := r.builder.surface.Container(); c != nil {
		c.Height = float64(height)
	}
	ctl.install(nil)
	h := r.builder.Build()
	ctl.install(h)
	if h == nil {
		return
	}
	h.SetProgress(1)
	if state.IsTogglePending {
		ctl.beginClose(h)
	}
	log.WithField("height", height).Debug("cardnav: timeline rebuilt at full progress")
}
