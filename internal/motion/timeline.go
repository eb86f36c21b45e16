// Package motion is a small tweening engine. A Timeline holds tweens placed at
// offsets on a shared playhead; the host advances the playhead from its frame
// loop. Timelines are not safe for concurrent use.
package motion

import "time"

// Tween animates one target between values the tween captures itself.
type Tween struct {
	// Start is the tween's offset from the beginning of the timeline.
	Start    time.Duration
	Duration time.Duration
	Ease     EaseFunc
	// Init runs the first time the tween renders after the timeline starts or
	// restarts. From/to values are captured here, so function-based targets
	// resolve at play time rather than build time.
	Init func()
	// Update receives eased progress.
	Update func(p float64)

	inited bool
}

// End is the offset at which the tween finishes.
func (tw *Tween) End() time.Duration { return tw.Start + tw.Duration }

func (tw *Tween) render(playhead time.Duration) {
	if !tw.inited {
		if playhead < tw.Start {
			return
		}
		tw.inited = true
		if tw.Init != nil {
			tw.Init()
		}
	}
	p := 1.0
	if tw.Duration > 0 {
		p = float64(playhead-tw.Start) / float64(tw.Duration)
	}
	p = clamp01(p)
	ease := tw.Ease
	if ease == nil {
		ease = MustEase(DefaultEase)
	}
	if tw.Update != nil {
		tw.Update(ease(p))
	}
}

// Timeline is a paused-by-default sequence of tweens that can be played,
// reversed, scrubbed and killed as a unit.
type Timeline struct {
	tweens   []*Tween
	duration time.Duration
	playhead time.Duration
	reversed bool
	paused   bool
	killed   bool

	onComplete        func()
	onReverseComplete func()
}

// NewTimeline returns an empty, paused timeline.
func NewTimeline() *Timeline {
	return &Timeline{paused: true}
}

// Add places tw at tw.Start. The timeline's duration grows to cover it.
func (tl *Timeline) Add(tw *Tween) {
	if tl.killed || tw == nil {
		return
	}
	if tw.Start < 0 {
		tw.Start = 0
	}
	tl.tweens = append(tl.tweens, tw)
	if end := tw.End(); end > tl.duration {
		tl.duration = end
	}
}

// Duration is the end offset of the last tween.
func (tl *Timeline) Duration() time.Duration { return tl.duration }

// Restart rewinds to the start, re-arms every tween's Init and plays forward.
func (tl *Timeline) Restart() {
	if tl.killed {
		return
	}
	for _, tw := range tl.tweens {
		tw.inited = false
	}
	tl.playhead = 0
	tl.reversed = false
	tl.paused = false
	tl.render()
}

// Play resumes forward playback from the current position.
func (tl *Timeline) Play() {
	if tl.killed {
		return
	}
	tl.reversed = false
	tl.paused = false
}

// Reverse plays backward from the current position.
func (tl *Timeline) Reverse() {
	if tl.killed {
		return
	}
	tl.reversed = true
	tl.paused = false
}

// Pause stops the playhead where it is.
func (tl *Timeline) Pause() { tl.paused = true }

// Kill disposes the timeline. Every later call is a no-op and registered
// callbacks are dropped.
func (tl *Timeline) Kill() {
	tl.killed = true
	tl.paused = true
	tl.tweens = nil
	tl.onComplete = nil
	tl.onReverseComplete = nil
}

// Killed reports whether Kill has been called.
func (tl *Timeline) Killed() bool { return tl.killed }

// SetProgress moves the playhead to p (0..1 of the duration) and renders
// immediately. The paused state is unchanged.
func (tl *Timeline) SetProgress(p float64) {
	if tl.killed {
		return
	}
	tl.playhead = time.Duration(clamp01(p) * float64(tl.duration))
	tl.render()
}

// Progress is the playhead position as a fraction of the duration.
func (tl *Timeline) Progress() float64 {
	if tl.duration <= 0 {
		if tl.playhead > 0 {
			return 1
		}
		return 0
	}
	return clamp01(float64(tl.playhead) / float64(tl.duration))
}

// Reversed reports the current playback direction.
func (tl *Timeline) Reversed() bool { return tl.reversed }

// Active reports whether Advance will move the playhead.
func (tl *Timeline) Active() bool { return !tl.killed && !tl.paused }

// OnComplete registers fn to run when forward playback reaches the end.
func (tl *Timeline) OnComplete(fn func()) {
	if tl.killed {
		return
	}
	tl.onComplete = fn
}

// OnReverseComplete registers a one-shot fn that runs when reverse playback
// reaches the start. A later registration replaces an earlier one; nil clears.
func (tl *Timeline) OnReverseComplete(fn func()) {
	if tl.killed {
		return
	}
	tl.onReverseComplete = fn
}

// Advance moves the playhead by dt in the current direction, renders, and
// fires completion callbacks at either end. It reports whether the timeline
// is still running afterwards.
func (tl *Timeline) Advance(dt time.Duration) bool {
	if !tl.Active() {
		return false
	}
	if tl.reversed {
		tl.playhead -= dt
		if tl.playhead <= 0 {
			tl.playhead = 0
			tl.render()
			tl.paused = true
			if fn := tl.onReverseComplete; fn != nil {
				tl.onReverseComplete = nil
				fn()
			}
			return tl.Active()
		}
	} else {
		tl.playhead += dt
		if tl.playhead >= tl.duration {
			tl.playhead = tl.duration
			tl.render()
			tl.paused = true
			if fn := tl.onComplete; fn != nil {
				fn()
			}
			return tl.Active()
		}
	}
	tl.render()
	return true
}

func (tl *Timeline) render() {
	for _, tw := range tl.tweens {
		tw.render(tl.playhead)
	}
}

func clamp01(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

// Lerp interpolates between a and b.
func Lerp(a, b, p float64) float64 { return a + (b-a)*p }
