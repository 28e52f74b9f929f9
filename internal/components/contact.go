package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mrsuber/ResultInstitudeWeb/internal/content"
)

// ContactFields are the form field names, all required.
var ContactFields = []string{"name", "email", "subject", "message"}

func ContactSection(page Page) g.Node {
	c := page.Site.Contact
	th := page.Site.RevealThreshold

	return Section(
		ID(content.SectionContact),
		Class("section contact"),

		Div(
			Class("container"),
			SectionHeader(content.ContactHeader, th, c.Eyebrow, c.Title, c.Intro),

			Div(
				Class("contact-grid"),

				Div(
					Class("contact-info surface reveal"),
					Reveal(content.ContactInfo, th),
					contactItem("lucide--mail", "Email", A(Href("mailto:"+c.Email), g.Text(c.Email))),
					contactItem("lucide--phone", "Phone", g.Text(c.Phone)),
					contactItem("lucide--map-pin", "Location", g.Text(c.Location)),
				),

				Form(
					ID("contact-form"),
					Class("contact-form surface reveal"),
					Reveal(content.ContactForm, th),
					Method("post"),
					Action("/contact"),

					g.If(page.Sent, Div(Class("alert alert-success"), g.Attr("role", "status"), g.Text(c.SentMessage))),

					Div(
						Class("form-row"),
						field("name", "Your Name", Input(Type("text"), ID("contact-name"), Name("name"), Required())),
						field("email", "Your Email", Input(Type("email"), ID("contact-email"), Name("email"), Required())),
					),
					field("subject", "Subject", Input(Type("text"), ID("contact-subject"), Name("subject"), Required())),
					field("message", "Message", Textarea(ID("contact-message"), Name("message"), Required(), Rows("5"))),

					Button(Type("submit"), Class("btn btn-primary"), g.Text(c.SubmitLabel), Icon("lucide--send", "")),
				),
			),
		),
	)
}

func contactItem(icon, label string, value g.Node) g.Node {
	return Div(
		Class("contact-item"),
		IconBadge(icon, "var(--primary)"),
		Div(
			Span(Class("contact-label"), g.Text(label)),
			Div(Class("contact-value"), value),
		),
	)
}

func field(name, label string, input g.Node) g.Node {
	return Div(
		Class("form-field"),
		Label(g.Attr("for", "contact-"+name), g.Text(label)),
		input,
	)
}
