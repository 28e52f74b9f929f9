package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mrsuber/ResultInstitudeWeb/internal/content"
)

func ServicesSection(page Page) g.Node {
	svc := page.Site.Services
	th := page.Site.RevealThreshold

	return Section(
		ID(content.SectionServices),
		Class("section services"),

		Div(
			Class("container"),
			SectionHeader(content.ServicesHeader, th, svc.Eyebrow, svc.Title, svc.Intro),

			Div(
				Class("services-grid"),
				g.Group(g.Map(svc.Items, func(s content.Service) g.Node {
					return Div(
						Class("service-card surface reveal"),
						Reveal(s.RevealID(), th),
						IconBadge(s.Icon, s.Color),
						H3(Class("service-title"), g.Text(s.Title)),
						P(Class("service-description"), g.Text(s.Description)),
					)
				})),
			),
		),
	)
}
