package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	framesPerSecond = 60
	// maxFrameDelta caps the time a single frame may advance the animation,
	// so a stalled terminal resumes where it left off instead of jumping.
	maxFrameDelta = 100 * time.Millisecond

	// defaultWidth and defaultHeight size the nav until the first
	// WindowSizeMsg arrives.
	defaultWidth  = 80
	defaultHeight = 24

	debugBarWidth = 30

	frameInterval = time.Second / framesPerSecond
)
