package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mrsuber/ResultInstitudeWeb/internal/content"
)

// MenuDrawerID is the checkbox that holds the mobile menu overlay state.
const MenuDrawerID = "menu-drawer"

// Navbar is the fixed top bar. The "scrolled" state is driven by the page
// script; the mobile menu is a checkbox drawer the navigator closes.
func Navbar(page Page) g.Node {
	site := page.Site

	return Header(
		ID("navbar"),
		Class("navbar"),
		g.Attr("data-scrolled", "false"),

		Div(
			Class("navbar-inner container"),

			NavLink(content.NavLink{Section: content.SectionHome}, "navbar-brand", Logo(site)),

			Nav(
				Class("navbar-links"),
				g.Attr("aria-label", "Main"),
				Ul(
					g.Group(g.Map(site.Nav, func(l content.NavLink) g.Node {
						return Li(NavLink(l, "navbar-link"))
					})),
				),
			),

			Div(
				Class("navbar-actions"),
				A(Href(site.Login.Href), Class("btn btn-primary btn-sm"), g.Text(site.Login.Label)),

				Div(
					Class("drawer"),
					Input(
						ID(MenuDrawerID),
						Type("checkbox"),
						Class("drawer-toggle"),
						g.Attr("data-overlay", ""),
					),
					Label(
						g.Attr("for", MenuDrawerID),
						Class("btn btn-ghost btn-square drawer-button"),
						g.Attr("aria-label", "open menu"),
						Icon("lucide--menu", ""),
					),
					Div(
						Class("drawer-side"),
						Label(
							g.Attr("for", MenuDrawerID),
							g.Attr("aria-label", "close menu"),
							Class("drawer-overlay"),
						),
						Ul(
							Class("drawer-menu"),
							g.Group(g.Map(site.Nav, func(l content.NavLink) g.Node {
								return Li(NavLink(l, ""))
							})),
							Li(A(Href(site.Login.Href), g.Text(site.Login.Label))),
						),
					),
				),
			),
		),
	)
}
