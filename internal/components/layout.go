package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
}

func Layout(page Page, config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = page.Site.Brand.Name + " - " + page.Site.Brand.Tagline
	}

	if config.Description == "" {
		config.Description = page.Site.Hero.Subtitle
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", page.Theme.Name),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				StyleEl(g.Raw(page.Theme.CSSVars())),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class(page.Theme.BodyClass()),
				g.Attr("data-live", boolAttr(page.Live)),
				g.Group(content),

				Script(Src("/static/js/live.js"), g.Attr("defer", "")),
			),
		),
	})
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// LandingPage assembles the single-page site.
func LandingPage(page Page) g.Node {
	return Layout(page, PageConfig{},
		Navbar(page),
		Main(
			Hero(page),
			ServicesSection(page),
			AboutSection(page),
			ContactSection(page),
		),
		PageFooter(page),
	)
}
