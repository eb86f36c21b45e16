package cardnav

import (
	"github.com/bestpick/cardnav/internal/surface"
	"github.com/bestpick/cardnav/internal/viewport"
)

// FallbackHeight is returned when the tree cannot be measured.
const FallbackHeight = surface.WideHeight

// HeightCalculator measures the height the container must open to.
type HeightCalculator struct {
	surface *surface.Surface
}

// Height returns the expanded container height for the current terminal.
//
// Wide terminals use a fixed row layout. Narrow ones stack the cards, so the
// hidden content region is switched into flow just long enough to read its
// natural height and then restored exactly. The switch and the restore happen
// in this call, between two renders, so no frame ever shows it.
func (h HeightCalculator) Height() int {
	if h.surface == nil || h.surface.Container() == nil {
		return FallbackHeight
	}
	if h.surface.Class() == viewport.Wide {
		return surface.WideHeight
	}
	content := h.surface.Content()
	if content == nil {
		return FallbackHeight
	}

	saved := content.Style()
	defer content.Restore(saved)
	content.Restore(surface.ContentStyle{
		Visible:     true,
		Interactive: true,
		Position:    surface.Static,
		Height:      surface.AutoHeight,
	})
	return surface.TopBarHeight + content.ScrollHeight() + surface.ContentPadding
}
