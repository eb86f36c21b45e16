//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConfigFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"cardnav.yaml", true},
		{"cardnav.yml", true},
		{"CardNav.JSON", true},
		{"cardnav.toml", true},
		{"marketing.cardnav.yaml", true},
		{"/a/b/docs.cardnav.toml", true},
		{"cardnav.ini", false},
		{"config.yaml", false},
		{"mycardnav.yaml", false},
		{"cardnav", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConfigFile(tt.name))
		})
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	files := []string{
		"cardnav.yaml",
		"site/docs.cardnav.toml",
		"site/deep/er/cardnav.json",
		"site/config.yaml",
		"node_modules/pkg/cardnav.yaml",
		".git/cardnav.yaml",
	}
	for _, f := range files {
		p := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o700))
		require.NoError(t, os.WriteFile(p, []byte("items: []\n"), 0o600))
	}

	found, err := Discover(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "cardnav.yaml"),
		filepath.Join(root, "site/deep/er/cardnav.json"),
		filepath.Join(root, "site/docs.cardnav.toml"),
	}, found)
}

func TestDiscover_Cancelled(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "cardnav.yaml"), []byte("items: []\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Discover(ctx, root)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWellKnownPaths(t *testing.T) {
	paths := WellKnownPaths()
	require.NotEmpty(t, paths)
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "cardnav.yaml"), paths[0])
	for _, p := range paths {
		assert.True(t, IsConfigFile(p), p)
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	assert.Empty(t, Locate())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cardnav.toml"), []byte(""), 0o600))
	assert.Equal(t, filepath.Join(dir, "cardnav.toml"), Locate())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cardnav.yaml"), []byte(""), 0o600))
	assert.Equal(t, filepath.Join(dir, "cardnav.yaml"), Locate())
}
