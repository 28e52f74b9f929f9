package components

import (
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mrsuber/ResultInstitudeWeb/internal/content"
	"github.com/mrsuber/ResultInstitudeWeb/internal/theme"
)

// Page carries everything a region needs to render.
type Page struct {
	Site  *content.Site
	Theme theme.Theme
	// Sent shows the contact confirmation after a form post.
	Sent bool
	// Live enables the server-driven reveal bridge in the page script.
	Live bool
	Year int
}

func Logo(site *content.Site) g.Node {
	return Div(
		Class("logo"),
		Span(Class("logo-mark"), g.Text(initials(site.Brand.Name))),
		Div(
			Class("logo-text"),
			Span(Class("logo-name"), g.Text(site.Brand.Name)),
			Span(Class("logo-tagline"), g.Text(site.Brand.Tagline)),
		),
	)
}

func initials(name string) string {
	var b strings.Builder
	for _, f := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(f[:1]))
		if b.Len() == 2 {
			break
		}
	}
	return b.String()
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func Icon(iconClass, ariaLabel string) g.Node {
	if ariaLabel != "" {
		return Span(
			Class("iconify icon"),
			g.Attr("data-icon", convertIconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}
	return Span(
		Class("iconify icon"),
		g.Attr("data-icon", convertIconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon, color string) g.Node {
	return Span(
		Class("icon-badge"),
		Style(fmt.Sprintf("--accent:%s", color)),
		Icon(icon, ""),
	)
}

// Reveal tags an element for the visibility tracker. The page script reports
// its intersection ratio and adds the "revealed" class when told to.
func Reveal(id string, threshold float64, children ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Attr("data-reveal", ""),
		g.Attr("data-reveal-id", id),
		g.Attr("data-threshold", strconv.FormatFloat(threshold, 'f', -1, 64)),
		g.Group(children),
	})
}

// NavLink is an in-page link handled by the navigator instead of the browser.
func NavLink(link content.NavLink, class string, children ...g.Node) g.Node {
	if len(children) == 0 {
		children = []g.Node{g.Text(link.Label)}
	}
	return A(
		Href(link.Href()),
		g.If(class != "", Class(class)),
		g.Attr("data-nav", link.Section),
		g.Group(children),
	)
}

// SectionHeader renders the eyebrow/title/intro block used by every section.
func SectionHeader(id string, threshold float64, eyebrow, title, intro string) g.Node {
	return Div(
		Class("section-header reveal"),
		Reveal(id, threshold),
		g.If(eyebrow != "", Span(Class("eyebrow"), g.Text(eyebrow))),
		H2(Class("section-title"), g.Text(title)),
		g.If(intro != "", P(Class("section-intro"), g.Text(intro))),
	)
}
