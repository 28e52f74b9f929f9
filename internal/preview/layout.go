package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrsuber/ResultInstitudeWeb/internal/components"
	"github.com/mrsuber/ResultInstitudeWeb/internal/content"
)

// block is a rendered page element. Blocks with an id stay blank until the
// element is revealed; the footer has no id and is always shown.
type block struct {
	id      string
	section string
	lines   []string
	y       int
}

func (b block) height() int { return len(b.lines) }

// layoutPage renders every element at width and assigns each block its row.
// A blank row separates consecutive blocks.
func layoutPage(site *content.Site, st Styles, width, year int) ([]block, map[string]int, int) {
	w := max(20, min(width-4, 100))
	wrap := func(style lipgloss.Style, text string) string {
		return style.Width(w).Render(text)
	}

	var blocks []block
	add := func(section, id string, parts ...string) {
		text := strings.Join(parts, "\n")
		blocks = append(blocks, block{id: id, section: section, lines: strings.Split(text, "\n")})
	}

	hero := site.Hero
	add(content.SectionHome, content.HeroTitle,
		st.Eyebrow.Render(hero.Welcome),
		st.Gradient(hero.Title),
	)
	add(content.SectionHome, content.HeroSubtitle, wrap(st.Accent, hero.Subtitle))
	founder := hero.Founder
	add(content.SectionHome, content.HeroDescription,
		wrap(st.Body, hero.Description),
		st.Muted.Render(fmt.Sprintf("%s · %s · %s", founder.Name, founder.Role, founder.Credentials)),
	)
	add(content.SectionHome, content.HeroCTA,
		lipgloss.JoinHorizontal(lipgloss.Top,
			st.Button.Render(hero.PrimaryCTA.Label), "  ", st.Button.Render(hero.SecondaryCTA.Label)),
	)
	stats := make([]string, 0, len(hero.Stats))
	for _, s := range hero.Stats {
		stats = append(stats, st.Stat.Render(s.Value)+" "+st.Muted.Render(s.Label))
	}
	add(content.SectionHome, content.HeroStats, strings.Join(stats, "   "))

	svc := site.Services
	add(content.SectionServices, content.ServicesHeader,
		st.Eyebrow.Render(svc.Eyebrow),
		wrap(st.Title, svc.Title),
		wrap(st.Body, svc.Intro),
	)
	for _, item := range svc.Items {
		card := st.Card.Width(w - 2).Render(st.Title.Render(item.Title) + "\n" + st.Body.Render(item.Description))
		add(content.SectionServices, item.RevealID(), card)
	}

	about := site.About
	add(content.SectionAbout, content.AboutHeader,
		st.Eyebrow.Render(about.Eyebrow),
		wrap(st.Title, about.Title),
	)
	story := make([]string, 0, len(about.Story)+len(about.Values))
	for _, p := range about.Story {
		story = append(story, wrap(st.Body, p))
	}
	for _, v := range about.Values {
		story = append(story, st.Accent.Render("• ")+st.Body.Render(v))
	}
	add(content.SectionAbout, content.AboutStory, story...)
	highlights := make([]string, 0, len(about.Highlights))
	for _, h := range about.Highlights {
		highlights = append(highlights, st.Title.Render(h.Title)+"  "+st.Muted.Render(h.Description))
	}
	add(content.SectionAbout, content.AboutHighlights, highlights...)

	c := site.Contact
	add(content.SectionContact, content.ContactHeader,
		st.Eyebrow.Render(c.Eyebrow),
		wrap(st.Title, c.Title),
		wrap(st.Body, c.Intro),
	)
	add(content.SectionContact, content.ContactInfo,
		st.Accent.Render("Email    ")+st.Body.Render(c.Email),
		st.Accent.Render("Phone    ")+st.Body.Render(c.Phone),
		st.Accent.Render("Location ")+st.Body.Render(c.Location),
	)
	fields := make([]string, 0, len(components.ContactFields)+1)
	for _, f := range components.ContactFields {
		fields = append(fields, st.Muted.Render(fmt.Sprintf("%-8s ", fieldLabel(f)))+strings.Repeat("_", max(8, w/2)))
	}
	fields = append(fields, st.Button.Render(c.SubmitLabel))
	add(content.SectionContact, content.ContactForm, fields...)

	f := site.Footer
	add("", "",
		wrap(st.Footer, f.About),
		st.Muted.Render(f.Motto),
		st.Footer.Render(fmt.Sprintf("© %d %s.", year, site.Brand.Name)),
	)

	anchors := make(map[string]int)
	y := 0
	for i := range blocks {
		blocks[i].y = y
		if sec := blocks[i].section; sec != "" {
			if _, ok := anchors[sec]; !ok {
				anchors[sec] = y
			}
		}
		y += blocks[i].height() + 1
	}
	return blocks, anchors, max(0, y-1)
}

func fieldLabel(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
