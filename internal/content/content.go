// Package content holds the site copy and derives the page layout the reveal
// controller mounts.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrsuber/ResultInstitudeWeb/internal/reveal"
)

//go:embed content.yaml
var defaultContent []byte

// Section names, also used as anchor ids.
const (
	SectionHome     = "home"
	SectionServices = "services"
	SectionAbout    = "about"
	SectionContact  = "contact"
)

// Reveal ids of the fixed page elements.
const (
	HeroTitle       = "hero-title"
	HeroSubtitle    = "hero-subtitle"
	HeroDescription = "hero-description"
	HeroCTA         = "hero-cta"
	HeroStats       = "hero-stats"

	ServicesHeader = "services-header"

	AboutHeader     = "about-header"
	AboutStory      = "about-story"
	AboutHighlights = "about-highlights"

	ContactHeader = "contact-header"
	ContactInfo   = "contact-info"
	ContactForm   = "contact-form"
)

type Site struct {
	Brand           Brand     `yaml:"brand"`
	Nav             []NavLink `yaml:"nav"`
	Login           Link      `yaml:"login"`
	RevealThreshold float64   `yaml:"reveal_threshold"`
	Hero            Hero      `yaml:"hero"`
	Services        Services  `yaml:"services"`
	About           About     `yaml:"about"`
	Contact         Contact   `yaml:"contact"`
	Footer          Footer    `yaml:"footer"`
}

type Brand struct {
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
	Location string `yaml:"location"`
}

// NavLink points at a section of the page.
type NavLink struct {
	Section string `yaml:"section"`
	Label   string `yaml:"label"`
}

// Href is the in-page href of the link.
func (l NavLink) Href() string {
	return "#" + reveal.SectionName(l.Section)
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Hero struct {
	Welcome      string  `yaml:"welcome"`
	Title        string  `yaml:"title"`
	Subtitle     string  `yaml:"subtitle"`
	Description  string  `yaml:"description"`
	Founder      Founder `yaml:"founder"`
	PrimaryCTA   NavLink `yaml:"primary_cta"`
	SecondaryCTA NavLink `yaml:"secondary_cta"`
	Stats        []Stat  `yaml:"stats"`
}

type Founder struct {
	Name        string `yaml:"name"`
	Role        string `yaml:"role"`
	Credentials string `yaml:"credentials"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Services struct {
	Eyebrow string    `yaml:"eyebrow"`
	Title   string    `yaml:"title"`
	Intro   string    `yaml:"intro"`
	Items   []Service `yaml:"items"`
}

type Service struct {
	ID          string `yaml:"id"`
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

// RevealID is the reveal id of the service card.
func (s Service) RevealID() string {
	return "service-" + s.ID
}

type About struct {
	Eyebrow    string      `yaml:"eyebrow"`
	Title      string      `yaml:"title"`
	Story      []string    `yaml:"story"`
	Values     []string    `yaml:"values"`
	Highlights []Highlight `yaml:"highlights"`
}

type Highlight struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Contact struct {
	Eyebrow     string `yaml:"eyebrow"`
	Title       string `yaml:"title"`
	Intro       string `yaml:"intro"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	Location    string `yaml:"location"`
	SubmitLabel string `yaml:"submit_label"`
	SentMessage string `yaml:"sent_message"`
}

type Footer struct {
	About        string    `yaml:"about"`
	QuickLinks   []NavLink `yaml:"quick_links"`
	ServiceLinks []NavLink `yaml:"service_links"`
	Socials      []Social  `yaml:"socials"`
	Credit       Credit    `yaml:"credit"`
	Motto        string    `yaml:"motto"`
}

type Social struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

type Credit struct {
	Text string `yaml:"text"`
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// Default returns the embedded site copy.
func Default() *Site {
	s, err := Parse(defaultContent, nil)
	if err != nil {
		panic(fmt.Sprintf("embedded content is invalid: %v", err))
	}
	return s
}

// Load returns the embedded copy, with file decoded over it when set.
func Load(file string) (*Site, error) {
	base := Default()
	if file == "" {
		return base, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data, base)
}

// Parse decodes YAML content. When base is non-nil the data is decoded over a
// copy of it.
func Parse(data []byte, base *Site) (*Site, error) {
	s := &Site{}
	if base != nil {
		*s = *base
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	s.RevealThreshold = reveal.NormalizeThreshold(s.RevealThreshold)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that every navigation link points at a known section and
// that service ids are usable as element ids.
func (s *Site) Validate() error {
	if strings.TrimSpace(s.Brand.Name) == "" {
		return fmt.Errorf("content: brand name is required")
	}
	links := append([]NavLink{}, s.Nav...)
	links = append(links, s.Hero.PrimaryCTA, s.Hero.SecondaryCTA)
	links = append(links, s.Footer.QuickLinks...)
	links = append(links, s.Footer.ServiceLinks...)
	for _, l := range links {
		if !IsSection(l.Section) {
			return fmt.Errorf("content: link %q points at unknown section %q", l.Label, l.Section)
		}
	}

	seen := make(map[string]bool, len(s.Services.Items))
	for _, svc := range s.Services.Items {
		if svc.ID == "" || strings.ContainsAny(svc.ID, " #") {
			return fmt.Errorf("content: service %q has invalid id %q", svc.Title, svc.ID)
		}
		if seen[svc.ID] {
			return fmt.Errorf("content: duplicate service id %q", svc.ID)
		}
		seen[svc.ID] = true
	}
	return nil
}

// IsSection reports whether name (optionally in href form) is a page section.
func IsSection(name string) bool {
	switch reveal.SectionName(name) {
	case SectionHome, SectionServices, SectionAbout, SectionContact:
		return true
	}
	return false
}

// SectionNames lists the sections in page order.
func SectionNames() []string {
	return []string{SectionHome, SectionServices, SectionAbout, SectionContact}
}

// RevealIDs lists the reveal ids of each section in page order.
func (s *Site) RevealIDs() map[string][]string {
	services := []string{ServicesHeader}
	for _, svc := range s.Services.Items {
		services = append(services, svc.RevealID())
	}
	return map[string][]string{
		SectionHome:     {HeroTitle, HeroSubtitle, HeroDescription, HeroCTA, HeroStats},
		SectionServices: services,
		SectionAbout:    {AboutHeader, AboutStory, AboutHighlights},
		SectionContact:  {ContactHeader, ContactInfo, ContactForm},
	}
}

// Layout returns fresh mounted regions for every section. Each call yields
// independent handles, so each page session gets its own.
func (s *Site) Layout() []reveal.Section {
	ids := s.RevealIDs()
	sections := make([]reveal.Section, 0, len(ids))
	for _, name := range SectionNames() {
		sec := reveal.Section{Name: name, Anchor: reveal.NewRegion(name)}
		for _, id := range ids[name] {
			sec.Reveal = append(sec.Reveal, reveal.Target{
				Element:   reveal.NewRegion(id),
				Threshold: s.RevealThreshold,
			})
		}
		sections = append(sections, sec)
	}
	return sections
}
