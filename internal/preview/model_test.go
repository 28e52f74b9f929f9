package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsuber/ResultInstitudeWeb/internal/content"
	"github.com/mrsuber/ResultInstitudeWeb/internal/site"
	"github.com/mrsuber/ResultInstitudeWeb/internal/theme"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	snap, err := site.Load(site.Sources{Theme: theme.Glass})
	require.NoError(t, err)
	m := New(snap, Options{Width: 120, Height: 30, Year: 2026})
	t.Cleanup(m.Close)
	return m
}

func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// settle runs animation frames until the scroll comes to rest.
func settle(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; i < 2000 && m.Animating(); i++ {
		m.Update(frameMsg{})
	}
	require.False(t, m.Animating(), "scroll never settled")
}

func TestNew_RevealsVisibleElements(t *testing.T) {
	m := newModel(t)

	revealed := m.Revealed()
	assert.Contains(t, revealed, content.HeroTitle)
	assert.NotContains(t, revealed, content.ContactForm)
	assert.Equal(t, 0, m.Offset())
	assert.False(t, m.Scrolled())
	assert.Equal(t, content.SectionHome, m.Section())
}

func TestView_HidesUnrevealedContent(t *testing.T) {
	m := newModel(t)

	view := m.View()
	assert.Contains(t, view, m.site.Brand.Name)
	assert.NotContains(t, view, m.site.Contact.Email)

	require.Nil(t, press(m, "G"))
	assert.Contains(t, m.View(), m.site.Footer.Motto)
}

func TestJump_ScrollsSmoothlyAndReveals(t *testing.T) {
	m := newModel(t)

	cmd := press(m, "4")
	require.NotNil(t, cmd, "a smooth scroll schedules frames")
	assert.True(t, m.Animating())

	for i := 0; i < 10; i++ {
		m.Update(frameMsg{})
	}
	assert.Greater(t, m.Offset(), 0)
	assert.Less(t, m.Offset(), m.clamp(m.anchors[content.SectionContact]), "early frames are part way")

	settle(t, m)
	assert.Equal(t, m.clamp(m.anchors[content.SectionContact]), m.Offset())
	assert.Contains(t, m.Revealed(), content.ContactHeader)
	assert.True(t, m.Scrolled())
	assert.Contains(t, m.View(), m.site.Contact.Email)
}

func TestReveal_IsOneShot(t *testing.T) {
	m := newModel(t)

	press(m, "3")
	settle(t, m)
	require.Contains(t, m.Revealed(), content.AboutHeader)

	press(m, "g")
	assert.Equal(t, 0, m.Offset())
	assert.Contains(t, m.Revealed(), content.AboutHeader, "scrolling away keeps the element revealed")
}

func TestMenu_SelectClosesAndNavigates(t *testing.T) {
	m := newModel(t)

	press(m, "m")
	require.True(t, m.MenuOpen())
	assert.Contains(t, m.View(), "› "+m.site.Nav[0].Label)

	press(m, "down")
	press(m, "down")
	cmd := press(m, "enter")
	assert.False(t, m.MenuOpen(), "the menu closes before scrolling")
	assert.NotNil(t, cmd)

	settle(t, m)
	assert.Equal(t, m.clamp(m.anchors[m.site.Nav[2].Section]), m.Offset())
}

func TestMenu_EscCloses(t *testing.T) {
	m := newModel(t)

	press(m, "m")
	press(m, "esc")
	assert.False(t, m.MenuOpen())
	assert.Equal(t, 0, m.Offset())
}

func TestManualScrollCancelsAnimation(t *testing.T) {
	m := newModel(t)

	press(m, "4")
	for i := 0; i < 10; i++ {
		m.Update(frameMsg{})
	}
	at := m.Offset()

	press(m, "down")
	assert.False(t, m.Animating())
	assert.Equal(t, at+1, m.Offset())
}

func TestResizeKeepsOffsetInRange(t *testing.T) {
	m := newModel(t)

	press(m, "G")
	bottom := m.Offset()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	assert.LessOrEqual(t, m.Offset(), bottom)
	assert.Equal(t, m.maxOffset(), m.Offset())
}

func TestThemeCycle(t *testing.T) {
	m := newModel(t)

	press(m, "t")
	assert.Equal(t, theme.Professional, m.styles.Theme.Name)
	press(m, "t")
	assert.Equal(t, theme.Glass, m.styles.Theme.Name)
}

func TestQuit(t *testing.T) {
	m := newModel(t)

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.shell.Sections(), "quitting unmounts the page")
}

func TestGradient(t *testing.T) {
	out := gradient("Result", "#E91E8C", "#4A7FC1")
	assert.Contains(t, stripANSI(out), "Result")

	assert.Contains(t, gradient("x", "nope", "#000000"), "x")
}

func stripANSI(s string) string {
	var sb strings.Builder
	skip := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			skip = true
		case skip && r == 'm':
			skip = false
		case !skip:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
