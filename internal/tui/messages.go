package tui

import (
	"time"

	"github.com/bestpick/cardnav/internal/config"
)

// Message types for Bubble Tea update loop.

// frameMsg advances the nav animation by one frame.
type frameMsg time.Time

// configMsg carries a reloaded config from the file watcher.
type configMsg struct{ Config *config.Config }
