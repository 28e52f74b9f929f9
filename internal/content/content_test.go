package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsuber/ResultInstitudeWeb/internal/reveal"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, "Result Institute", s.Brand.Name)
	assert.Equal(t, "Empowering Change Makers and Global Emerging Leaders", s.Hero.Subtitle)
	assert.Len(t, s.Hero.Stats, 3)
	assert.Len(t, s.Services.Items, 6)
	assert.Len(t, s.About.Highlights, 4)
	assert.Equal(t, []string{"Leadership", "Innovation", "Excellence", "Empowerment"}, s.About.Values)
	assert.Equal(t, "info@resultinstitute.cm", s.Contact.Email)
	assert.Equal(t, reveal.DefaultThreshold, s.RevealThreshold)

	for _, l := range s.Footer.ServiceLinks {
		assert.Equal(t, SectionServices, l.Section)
	}
}

func TestLayout(t *testing.T) {
	s := Default()
	sections := s.Layout()
	require.Len(t, sections, 4)

	names := make([]string, 0, len(sections))
	for _, sec := range sections {
		names = append(names, sec.Name)
		assert.Equal(t, sec.Name, sec.Anchor.ID())
		assert.True(t, sec.Anchor.Mounted())
		for _, target := range sec.Reveal {
			assert.Equal(t, 0.1, target.Threshold)
		}
	}
	assert.Equal(t, SectionNames(), names)

	services := sections[1].Reveal
	require.Len(t, services, 7)
	assert.Equal(t, ServicesHeader, services[0].Element.ID())
	assert.Equal(t, "service-training-management", services[1].Element.ID())

	// each call hands out fresh regions
	again := s.Layout()
	assert.NotSame(t, sections[0].Anchor, again[0].Anchor)
}

func TestLayout_MountsIntoShell(t *testing.T) {
	var revealed []string
	tracker := reveal.NewTracker(func(id string) { revealed = append(revealed, id) }, nil)
	nav := reveal.NewNavigator(reveal.ScrollFunc(func(reveal.ScrollRequest) {}), nil, nil)
	shell := reveal.NewShell(tracker, nav, nil)

	unmount := shell.Mount(Default().Layout())
	defer unmount()

	assert.Equal(t, SectionNames(), shell.Sections())
	assert.True(t, tracker.Observing(HeroTitle))
	assert.True(t, tracker.Observing(ContactForm))

	id, ok := nav.Target("#about")
	require.True(t, ok)
	assert.Equal(t, SectionAbout, id)
}

func TestLoad_Override(t *testing.T) {
	file := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
hero:
  title: Leadership Academy
reveal_threshold: 0.5
`), 0o644))

	s, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "Leadership Academy", s.Hero.Title)
	assert.Equal(t, "Welcome to Result Institute", s.Hero.Welcome, "unset fields keep the default")
	assert.Equal(t, 0.5, s.RevealThreshold)
	assert.Len(t, s.Services.Items, 6)

	assert.Equal(t, "Training Management System", Default().Hero.Title, "default is not mutated")
}

func TestLoad_NoFile(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_InvalidThresholdFallsBack(t *testing.T) {
	s, err := Parse([]byte("reveal_threshold: 3\n"), Default())
	require.NoError(t, err)
	assert.Equal(t, reveal.DefaultThreshold, s.RevealThreshold)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown nav section", "nav:\n  - section: pricing\n    label: Pricing\n"},
		{"empty service id", "services:\n  items:\n    - title: X\n"},
		{"duplicate service id", "services:\n  items:\n    - id: a\n    - id: a\n"},
		{"service id with space", "services:\n  items:\n    - id: a b\n"},
		{"missing brand", "brand:\n  name: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), Default())
			assert.Error(t, err)
		})
	}
}

func TestNavLinkHref(t *testing.T) {
	assert.Equal(t, "#services", NavLink{Section: "services"}.Href())
	assert.Equal(t, "#contact", NavLink{Section: "#contact"}.Href())
	assert.True(t, IsSection("#home"))
	assert.False(t, IsSection("footer"))
}
