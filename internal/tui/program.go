package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/bestpick/cardnav/internal/config"
)

// Options configures Run.
type Options struct {
	// WatchPath, when set, is watched and every valid change is applied live.
	WatchPath string
	// LogOutput receives logs while the TUI owns the terminal. Logs are
	// discarded when nil.
	LogOutput io.Writer
}

// Run starts the Bubble Tea TUI hosting the nav for cfg and blocks until the
// user quits or ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(cfg)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	// Silence logs during TUI to avoid corrupting the view.
	out := opts.LogOutput
	if out == nil {
		out = io.Discard
	}
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(out)
	defer logrus.SetOutput(prevOut)

	if opts.WatchPath != "" {
		go func() {
			err := config.Watch(ctx, opts.WatchPath, func(c *config.Config) {
				p.Send(configMsg{Config: c})
			})
			if err != nil {
				logrus.Warnf("config watch stopped: %v", err)
			}
		}()
	}

	_, err := p.Run()
	// The final model shares the nav with the initial one.
	model.Close()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
