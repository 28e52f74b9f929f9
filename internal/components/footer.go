package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mrsuber/ResultInstitudeWeb/internal/content"
)

func PageFooter(page Page) g.Node {
	site := page.Site
	f := site.Footer

	return Footer(
		Class("footer"),

		Div(
			Class("container footer-grid"),

			Div(
				Class("footer-brand"),
				Logo(site),
				P(g.Text(f.About)),
				Div(
					Class("footer-socials"),
					g.Group(g.Map(f.Socials, func(s content.Social) g.Node {
						return A(
							Class("btn btn-circle btn-sm"),
							Href(s.Href),
							g.Attr("target", "_blank"),
							g.Attr("rel", "noopener"),
							Icon("lucide--"+s.Name, s.Name),
						)
					})),
				),
			),

			footerColumn("Quick Links", f.QuickLinks),
			footerColumn("Services", f.ServiceLinks),

			Div(
				Class("footer-column"),
				P(Class("footer-heading"), g.Text("Contact")),
				Div(
					Class("footer-links"),
					A(Href("mailto:"+site.Contact.Email), g.Text(site.Contact.Email)),
					Span(g.Text(site.Contact.Phone)),
					Span(g.Text(site.Contact.Location)),
				),
			),
		),

		Div(
			Class("container footer-bottom"),
			P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", page.Year, site.Brand.Name))),
			P(
				g.Text(f.Credit.Text+" "),
				A(Href(f.Credit.Href), g.Attr("target", "_blank"), g.Attr("rel", "noopener"), g.Text(f.Credit.Name)),
			),
			P(Class("footer-motto"), g.Text(f.Motto)),
		),
	)
}

func footerColumn(title string, links []content.NavLink) g.Node {
	return Div(
		Class("footer-column"),
		P(Class("footer-heading"), g.Text(title)),
		Div(
			Class("footer-links"),
			g.Group(g.Map(links, func(l content.NavLink) g.Node {
				return NavLink(l, "")
			})),
		),
	)
}
