package tui

import (
	"time"

	"github.com/bestpick/cardnav/internal/cardnav"
	"github.com/bestpick/cardnav/internal/config"
	"github.com/bestpick/cardnav/internal/surface"
	"github.com/bestpick/cardnav/internal/viewport"
)

// snapshotStep is coarse; a snapshot only needs the end state.
const snapshotStep = 50 * time.Millisecond

// Snapshot renders the nav for cfg once at the given size, either collapsed or
// with the open animation played to the end.
func Snapshot(cfg *config.Config, size viewport.Size, expanded bool) string {
	w := viewport.NewWindow(size)
	nav := cardnav.New(surface.New(w, cfg), cfg.Ease)
	nav.Mount(w)
	defer nav.Unmount()

	if expanded {
		nav.Toggle()
		for nav.Tick(snapshotStep) {
		}
	}
	return nav.View()
}
