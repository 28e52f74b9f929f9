package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolder_Defaults(t *testing.T) {
	h, err := NewHolder(Sources{Theme: "professional"}, nil)
	require.NoError(t, err)

	snap := h.Current()
	assert.Equal(t, "professional", snap.Theme.Name)
	assert.Equal(t, "Result Institute", snap.Site.Brand.Name)
	assert.Len(t, h.Layout(), 4)
}

func TestHolder_UnknownTheme(t *testing.T) {
	_, err := NewHolder(Sources{Theme: "neon"}, nil)
	assert.Error(t, err)
}

func TestHolder_Reload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(file, []byte("hero:\n  title: First\n"), 0o644))

	h, err := NewHolder(Sources{Theme: "glass", ContentFile: file}, nil)
	require.NoError(t, err)
	assert.Equal(t, "First", h.Current().Site.Hero.Title)

	require.NoError(t, os.WriteFile(file, []byte("hero:\n  title: Second\n"), 0o644))
	require.NoError(t, h.Reload())
	assert.Equal(t, "Second", h.Current().Site.Hero.Title)

	require.NoError(t, os.WriteFile(file, []byte("nav:\n  - section: nowhere\n"), 0o644))
	assert.Error(t, h.Reload())
	assert.Equal(t, "Second", h.Current().Site.Hero.Title, "previous snapshot kept")
}
