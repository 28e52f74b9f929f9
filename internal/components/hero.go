package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mrsuber/ResultInstitudeWeb/internal/content"
)

func Hero(page Page) g.Node {
	hero := page.Site.Hero
	th := page.Site.RevealThreshold

	return Section(
		ID(content.SectionHome),
		Class("hero"),

		Div(Class("hero-backdrop")),

		Div(
			Class("container hero-inner"),

			Div(
				Class("hero-heading reveal"),
				Reveal(content.HeroTitle, th),
				P(Class("hero-welcome"), g.Text(hero.Welcome)),
				H1(Class("hero-title"), g.Text(hero.Title)),
			),

			P(
				Class("hero-subtitle reveal"),
				Reveal(content.HeroSubtitle, th),
				g.Text(hero.Subtitle),
			),

			Div(
				Class("hero-card surface reveal"),
				Reveal(content.HeroDescription, th),
				P(g.Text(hero.Description)),
				Div(
					Class("founder"),
					Strong(g.Text(hero.Founder.Name)),
					Span(g.Text(hero.Founder.Role)),
					Span(Class("founder-credentials"), g.Text(hero.Founder.Credentials)),
				),
			),

			Div(
				Class("hero-cta reveal"),
				Reveal(content.HeroCTA, th),
				NavLink(hero.PrimaryCTA, "btn btn-primary", g.Text(hero.PrimaryCTA.Label), Icon("lucide--arrow-right", "")),
				NavLink(hero.SecondaryCTA, "btn btn-ghost"),
			),

			Div(
				Class("hero-stats reveal"),
				Reveal(content.HeroStats, th),
				g.Group(g.Map(hero.Stats, func(s content.Stat) g.Node {
					return Div(
						Class("stat"),
						Span(Class("stat-value"), g.Text(s.Value)),
						Span(Class("stat-label"), g.Text(s.Label)),
					)
				})),
			),
		),
	)
}
