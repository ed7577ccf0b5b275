package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/report-forge/pkg/services/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPageSetup(t *testing.T) {
	t.Run("reads configured geometry", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.yaml")
		require.NoError(t, os.WriteFile(path, []byte("width: 595\nheight: 842\nmargin: 40\n"), 0o644))

		setup, err := LoadPageSetup(path)
		require.NoError(t, err)
		assert.Equal(t, export.PageSetup{Width: 595, Height: 842, Margin: 40}, setup)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.yaml")
		require.NoError(t, os.WriteFile(path, []byte("margin: 30\n"), 0o644))

		setup, err := LoadPageSetup(path)
		require.NoError(t, err)
		assert.Equal(t, float64(612), setup.Width)
		assert.Equal(t, float64(792), setup.Height)
		assert.Equal(t, float64(30), setup.Margin)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPageSetup(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
