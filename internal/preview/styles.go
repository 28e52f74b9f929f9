package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mrsuber/ResultInstitudeWeb/internal/theme"
)

// Styles holds the lipgloss styles derived from a site theme.
type Styles struct {
	Theme theme.Theme

	Navbar         lipgloss.Style
	NavbarScrolled lipgloss.Style
	NavItem        lipgloss.Style
	NavActive      lipgloss.Style

	Eyebrow lipgloss.Style
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Button  lipgloss.Style
	Card    lipgloss.Style
	Stat    lipgloss.Style

	Menu       lipgloss.Style
	MenuItem   lipgloss.Style
	MenuActive lipgloss.Style

	Footer lipgloss.Style
}

func NewStyles(th theme.Theme) Styles {
	p := th.Palette
	primary := lipgloss.Color(p.Primary.Main)
	secondary := lipgloss.Color(p.Secondary.Main)
	dark := lipgloss.Color(p.Neutral.Dark)
	gray := lipgloss.Color(p.Neutral.Gray)
	white := lipgloss.Color(p.Neutral.White)

	return Styles{
		Theme: th,

		Navbar: lipgloss.NewStyle().
			Padding(0, 1),
		NavbarScrolled: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(primary),
		NavItem: lipgloss.NewStyle().
			Foreground(gray).
			Padding(0, 1),
		NavActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 1),

		Eyebrow: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Body: lipgloss.NewStyle().
			Foreground(dark),
		Muted: lipgloss.NewStyle().
			Foreground(gray).
			Italic(true),
		Accent: lipgloss.NewStyle().
			Foreground(secondary),
		Button: lipgloss.NewStyle().
			Foreground(white).
			Background(primary).
			Padding(0, 2),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(secondary).
			Padding(0, 1),
		Stat: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Menu: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 3),
		MenuItem: lipgloss.NewStyle().
			Foreground(dark),
		MenuActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(gray),
	}
}

// Gradient colors each rune of text along a blend from the theme's primary
// to its secondary color.
func (s Styles) Gradient(text string) string {
	return gradient(text, s.Theme.Palette.Primary.Main, s.Theme.Palette.Secondary.Main)
}

func gradient(text, from, to string) string {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	runes := []rune(text)
	if errA != nil || errB != nil || len(runes) < 2 {
		return lipgloss.NewStyle().Bold(true).Render(text)
	}

	var sb strings.Builder
	last := float64(len(runes) - 1)
	for i, r := range runes {
		c := a.BlendLuv(b, float64(i)/last).Clamped()
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Hex())).
			Bold(true).
			Render(string(r)))
	}
	return sb.String()
}
