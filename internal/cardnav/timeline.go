package cardnav

import (
	"time"

	"github.com/bestpick/cardnav/internal/motion"
	"github.com/bestpick/cardnav/internal/surface"
)

// Handle is the animation capability the controller drives. *motion.Timeline
// satisfies it; any engine with the same surface can stand in.
type Handle interface {
	// Restart plays forward from the start, re-resolving lazy targets.
	Restart()
	// Play resumes forward from the current position.
	Play()
	Reverse()
	Kill()
	SetProgress(p float64)
	Progress() float64
	// OnReverseComplete registers a one-shot callback; nil clears it.
	OnReverseComplete(fn func())
	Advance(dt time.Duration) bool
	Active() bool
}

// Timing parameterises the two animation phases.
type Timing struct {
	// Phase is the duration of the height tween and of each card tween.
	Phase time.Duration
	// Stagger delays each card after the previous one.
	Stagger time.Duration
	// Overlap is how long before the height tween ends the cards start.
	Overlap time.Duration
	// CardOffset is the distance, in rows, cards rise from.
	CardOffset float64
}

// DefaultTiming is 400ms phases, 80ms stagger, with the
// cards starting 100ms before the container finishes.
func DefaultTiming() Timing {
	return Timing{
		Phase:      400 * time.Millisecond,
		Stagger:    80 * time.Millisecond,
		Overlap:    100 * time.Millisecond,
		CardOffset: 2,
	}
}

// TimelineBuilder creates the expand timeline for the current tree.
type TimelineBuilder struct {
	surface *surface.Surface
	heights HeightCalculator
	ease    motion.EaseFunc
	timing  Timing
}

// Build resets the tree to its collapsed state and returns a paused timeline
// that opens it: container height first, then the cards in a staggered
// cascade overlapping its tail. It returns nil when the container is missing.
func (b *TimelineBuilder) Build() Handle {
	c := b.surface.Container()
	if c == nil {
		return nil
	}
	c.Height = surface.TopBarHeight
	c.Overflow = surface.OverflowHidden
	views := b.surface.Cards().Views()
	for _, v := range views {
		v.OffsetY = b.timing.CardOffset
		v.Opacity = 0
	}

	tl := motion.NewTimeline()

	var fromHeight, toHeight float64
	tl.Add(&motion.Tween{
		Duration: b.timing.Phase,
		Ease:     b.ease,
		Init: func() {
			fromHeight = c.Height
			toHeight = float64(b.heights.Height())
		},
		Update: func(p float64) { c.Height = motion.Lerp(fromHeight, toHeight, p) },
	})

	cardsAt := max(tl.Duration()-b.timing.Overlap, 0)
	for i, v := range views {
		var fromOffset, fromOpacity float64
		tl.Add(&motion.Tween{
			Start:    cardsAt + time.Duration(i)*b.timing.Stagger,
			Duration: b.timing.Phase,
			Ease:     b.ease,
			Init: func() {
				fromOffset = v.OffsetY
				fromOpacity = v.Opacity
			},
			Update: func(p float64) {
				v.OffsetY = motion.Lerp(fromOffset, 0, p)
				v.Opacity = motion.Lerp(fromOpacity, 1, p)
			},
		})
	}
	return tl
}
