//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_LoadsBack(t *testing.T) {
	for _, name := range []string{"cardnav.json", "cardnav.yaml", "nested/dir/cardnav.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := Default()
			want.BrandText = "Saved"

			require.NoError(t, Save(want, path, false))
			got, err := Load(path)
			require.NoError(t, err)

			want.Path = path
			assert.Equal(t, want, got)
		})
	}
}

func TestSave_Errors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cardnav.yaml")
	require.NoError(t, Save(Default(), path, false))

	err := Save(Default(), path, false)
	require.ErrorIs(t, err, ErrExists)
	require.NoError(t, Save(Default(), path, true))

	err = Save(Default(), filepath.Join(dir, "cardnav.toml"), false)
	require.ErrorIs(t, err, ErrUnknownFormat)
}
