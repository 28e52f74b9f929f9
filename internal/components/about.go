package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mrsuber/ResultInstitudeWeb/internal/content"
)

func AboutSection(page Page) g.Node {
	about := page.Site.About
	th := page.Site.RevealThreshold

	return Section(
		ID(content.SectionAbout),
		Class("section about"),

		Div(
			Class("container"),
			SectionHeader(content.AboutHeader, th, about.Eyebrow, about.Title, ""),

			Div(
				Class("about-grid"),

				Div(
					Class("about-story reveal"),
					Reveal(content.AboutStory, th),
					g.Group(g.Map(about.Story, func(p string) g.Node {
						return P(g.Text(p))
					})),
					Ul(
						Class("about-values"),
						g.Group(g.Map(about.Values, func(v string) g.Node {
							return Li(Icon("lucide--check", ""), g.Text(v))
						})),
					),
				),

				Div(
					Class("about-highlights reveal"),
					Reveal(content.AboutHighlights, th),
					g.Group(g.Map(about.Highlights, func(h content.Highlight) g.Node {
						return Div(
							Class("highlight surface"),
							IconBadge(h.Icon, "var(--primary)"),
							H3(g.Text(h.Title)),
							P(g.Text(h.Description)),
						)
					})),
					Div(
						Class("founder-card surface"),
						Strong(g.Text(page.Site.Hero.Founder.Name)),
						Span(g.Text(page.Site.Hero.Founder.Role)),
					),
				),
			),
		),
	)
}
