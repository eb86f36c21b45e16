package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watch reloads the config at path whenever it is written or created (which
// covers being renamed into place) and hands each successfully loaded config
// to onChange. Reload failures are logged and the previous config stays in
// effect. Watch blocks until ctx is done.
//
// The parent directory is watched rather than the file so that editors that
// save by rename are still seen.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	expanded, err := expandTilde(path)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			c, err := Load(abs)
			if err != nil {
				logrus.WithError(err).Warn("Config reload failed; keeping previous config.")
				continue
			}
			logrus.WithField("path", abs).Debug("Config reloaded")
			onChange(c)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logrus.WithError(err).Warn("Config watcher error")
		}
	}
}
