package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	glass, ok := Lookup("glass")
	require.True(t, ok)
	assert.True(t, glass.Blur)
	assert.True(t, glass.Gradient)
	assert.Equal(t, "#E91E8C", glass.Palette.Primary.Main)

	pro, ok := Lookup(" Professional ")
	require.True(t, ok)
	assert.False(t, pro.Blur)
	assert.False(t, pro.Gradient)
	assert.Equal(t, glass.Palette, pro.Palette)

	_, ok = Lookup("neon")
	assert.False(t, ok)

	assert.Equal(t, []string{"glass", "professional"}, Names())
	assert.Equal(t, Glass, Default().Name)
}

func TestLoad_UnknownWithoutFile(t *testing.T) {
	_, err := Load("neon", "")
	assert.Error(t, err)
}

func TestLoad_FileOverridesPreset(t *testing.T) {
	file := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
blur: false
palette:
  primary:
    main: "#112233"
`), 0o644))

	th, err := Load("glass", file)
	require.NoError(t, err)
	assert.Equal(t, "glass", th.Name)
	assert.False(t, th.Blur)
	assert.True(t, th.Gradient)
	assert.Equal(t, "#112233", th.Palette.Primary.Main)
	assert.Equal(t, "#FF6BB5", th.Palette.Primary.Light, "unset fields keep the preset")
}

func TestLoad_CustomNameWithFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(file, []byte("gradient: true\n"), 0o644))

	th, err := Load("corporate", file)
	require.NoError(t, err)
	assert.Equal(t, "corporate", th.Name)
	assert.Equal(t, glassBackground, th.Background)
}

func TestLoad_BadFile(t *testing.T) {
	_, err := Load("glass", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("blur: [oops"), Default())
	assert.Error(t, err)
}

func TestCSSVars(t *testing.T) {
	glass := Default()
	css := glass.CSSVars()
	assert.Contains(t, css, "--primary:#E91E8C;")
	assert.Contains(t, css, "--page-bg:"+glassBackground+";")
	assert.Contains(t, css, "--surface-blur:blur(20px);")

	pro, _ := Lookup(Professional)
	css = pro.CSSVars()
	assert.Contains(t, css, "--page-bg:#F5F6F7;")
	assert.Contains(t, css, "--surface-blur:none;")
}

func TestBodyClass(t *testing.T) {
	assert.Equal(t, "theme-glass has-blur has-gradient", Default().BodyClass())
	pro, _ := Lookup(Professional)
	assert.Equal(t, "theme-professional", pro.BodyClass())
}
