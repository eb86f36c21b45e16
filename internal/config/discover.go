package config

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/sirupsen/logrus"
)

//nolint:gochecknoglobals // immutable lookup table used across the package.
var (
	configExts = []string{".yaml", ".yml", ".json", ".toml"}

	skipDirs = []string{".git", "node_modules", "vendor", ".cache"}
)

// IsConfigFile reports whether name looks like a nav config: cardnav.<ext> or
// <anything>.cardnav.<ext> with a supported extension.
func IsConfigFile(name string) bool {
	base := strings.ToLower(filepath.Base(name))
	ext := filepath.Ext(base)
	if !slices.Contains(configExts, ext) {
		return false
	}
	stem := strings.TrimSuffix(base, ext)
	return stem == "cardnav" || strings.HasSuffix(stem, ".cardnav")
}

// WellKnownPaths lists where a nav config is looked for when none is given,
// in order of preference.
func WellKnownPaths() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "cardnav"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "cardnav"))
	}

	var paths []string
	for _, dir := range dirs {
		for _, ext := range configExts {
			p := filepath.Join(dir, "cardnav"+ext)
			if !slices.Contains(paths, p) {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

// Locate returns the first well-known config that exists, or "".
func Locate() string {
	for _, p := range WellKnownPaths() {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			logrus.Debug("Found nav config at: ", p)
			return p
		}
	}
	return ""
}

// Discover walks root and returns every nav config file beneath it, sorted.
// Unreadable entries are skipped.
func Discover(ctx context.Context, root string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	expanded, err := expandTilde(root)
	if err != nil {
		return nil, err
	}

	var (
		mu    sync.Mutex
		found []string
	)
	conf := fastwalk.DefaultConfig
	err = fastwalk.Walk(&conf, expanded, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries.
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if path != expanded && slices.Contains(skipDirs, d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if IsConfigFile(d.Name()) {
			mu.Lock()
			found = append(found, path)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(found)
	return found, nil
}
