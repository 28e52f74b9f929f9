// Package preview renders the landing page in the terminal. Elements reveal as
// they scroll into view, the same way they do in the browser, driven by the
// reveal package with a polling visibility source.
package preview

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsuber/ResultInstitudeWeb/internal/content"
	"github.com/mrsuber/ResultInstitudeWeb/internal/reveal"
	"github.com/mrsuber/ResultInstitudeWeb/internal/site"
	"github.com/mrsuber/ResultInstitudeWeb/internal/theme"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
)

const (
	fps = 60

	// linePixels approximates one terminal row in CSS pixels, so the navbar
	// scrolled state flips at the same point as on the web.
	linePixels = 16

	chromeHeight = 3
)

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg { return frameMsg(t) })
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Jump     key.Binding
	Menu     key.Binding
	Select   key.Binding
	Close    key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to section")),
		Menu:     key.NewBinding(key.WithKeys("m", "tab"), key.WithHelp("m", "menu")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Jump, k.Menu, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Jump, k.Menu, k.Select, k.Close},
		{k.Theme, k.Help, k.Quit},
	}
}

type Options struct {
	Width  int
	Height int
	Year   int
	Log    *slog.Logger
}

// Model is the bubbletea model of the page preview.
type Model struct {
	site   *content.Site
	styles Styles
	keys   keyMap
	help   help.Model
	vp     viewport.Model
	log    *slog.Logger
	year   int

	store   *reveal.Store
	tracker *reveal.Tracker
	poller  *reveal.Poller
	shell   *reveal.Shell
	unmount func()

	blocks  []block
	anchors map[string]int
	total   int

	spring    harmonica.Spring
	pos       float64
	vel       float64
	target    float64
	animating bool

	menuOpen  bool
	menuIndex int

	width  int
	height int
}

// New mounts the page for snap and reveals whatever is visible at the top.
func New(snap *site.Snapshot, opts Options) *Model {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	if opts.Year == 0 {
		opts.Year = time.Now().Year()
	}

	m := &Model{
		site:   snap.Site,
		styles: NewStyles(snap.Theme),
		keys:   defaultKeyMap(),
		help:   help.New(),
		log:    log.With(logger.Scope("preview")),
		year:   opts.Year,
		store:  reveal.NewStore(),
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
	m.tracker = reveal.NewTracker(func(id string) { m.store.MarkRevealed(id) }, m.log)
	m.poller = reveal.NewPoller(m.tracker)
	nav := reveal.NewNavigator(reveal.ScrollFunc(m.scrollTo), reveal.OverlayFunc(m.closeMenu), m.log)
	m.shell = reveal.NewShell(m.tracker, nav, m.log)
	m.unmount = m.shell.Mount(m.site.Layout())

	m.vp = viewport.New(opts.Width, 1)
	m.resize(opts.Width, opts.Height)
	return m
}

// Run starts the interactive preview and blocks until the user quits.
func Run(snap *site.Snapshot, opts Options) error {
	m := New(snap, opts)
	defer m.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Close unmounts the page. It is safe to call more than once.
func (m *Model) Close() {
	if m.unmount != nil {
		m.unmount()
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		return m, m.step()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.Close()
			return m, tea.Quit
		}
		if m.menuOpen {
			return m, m.updateMenu(msg)
		}
		return m, m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.vp.Height)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.vp.Height)
	case key.Matches(msg, m.keys.Top):
		m.scrollBy(-m.total)
	case key.Matches(msg, m.keys.Bottom):
		m.scrollBy(m.total)
	case key.Matches(msg, m.keys.Jump):
		i := int(msg.String()[0] - '1')
		if i < len(m.site.Nav) {
			return m.goTo(m.site.Nav[i].Section)
		}
	case key.Matches(msg, m.keys.Menu):
		m.menuOpen = true
		m.menuIndex = 0
	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	if len(m.site.Nav) == 0 {
		m.closeMenu()
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		m.menuIndex = (m.menuIndex + 1) % len(m.site.Nav)
	case key.Matches(msg, m.keys.Up):
		m.menuIndex = (m.menuIndex + len(m.site.Nav) - 1) % len(m.site.Nav)
	case key.Matches(msg, m.keys.Select):
		return m.goTo(m.site.Nav[m.menuIndex].Section)
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Menu):
		m.closeMenu()
	}
	return nil
}

// goTo navigates like a nav link click: the menu closes and a smooth scroll
// starts toward the section.
func (m *Model) goTo(section string) tea.Cmd {
	wasAnimating := m.animating
	m.shell.GoTo(section)
	if m.animating && !wasAnimating {
		return frame()
	}
	return nil
}

func (m *Model) scrollTo(req reveal.ScrollRequest) {
	y, ok := m.anchors[req.TargetID]
	if !ok {
		return
	}
	m.target = float64(m.clamp(y))
	m.animating = true
}

func (m *Model) closeMenu() { m.menuOpen = false }

func (m *Model) scrollBy(delta int) {
	off := m.clamp(m.Offset() + delta)
	m.pos, m.target, m.vel = float64(off), float64(off), 0
	m.animating = false
	m.sync()
}

func (m *Model) step() tea.Cmd {
	if !m.animating {
		return nil
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
	if math.Abs(m.pos-m.target) < 0.5 && math.Abs(m.vel) < 0.5 {
		m.pos, m.vel = m.target, 0
		m.animating = false
	}
	m.sync()
	if m.animating {
		return frame()
	}
	return nil
}

func (m *Model) cycleTheme() {
	names := theme.Names()
	next := names[0]
	for i, n := range names {
		if n == m.styles.Theme.Name {
			next = names[(i+1)%len(names)]
		}
	}
	if th, ok := theme.Lookup(next); ok {
		m.styles = NewStyles(th)
		m.relayout()
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.vp.Width = width
	m.vp.Height = max(1, height-chromeHeight)
	m.help.Width = width
	m.relayout()
}

func (m *Model) relayout() {
	m.blocks, m.anchors, m.total = layoutPage(m.site, m.styles, m.width, m.year)
	m.poller.Reset()
	for _, b := range m.blocks {
		if b.id != "" {
			m.poller.Place(b.id, reveal.Rect{Y: b.y, Height: b.height()})
		}
	}
	m.pos = float64(m.clamp(int(math.Round(m.pos))))
	m.target = float64(m.clamp(int(math.Round(m.target))))
	m.sync()
}

// sync reports the current viewport to the reveal tracker and refreshes the
// rendered content.
func (m *Model) sync() {
	off := m.Offset()
	m.poller.Poll(reveal.Viewport{Offset: off, Height: m.vp.Height})
	m.shell.Scroll(off * linePixels)
	m.vp.SetContent(m.content())
	m.vp.SetYOffset(off)
}

func (m *Model) content() string {
	var sb strings.Builder
	for i, b := range m.blocks {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if b.id == "" || m.store.IsRevealed(b.id) {
			sb.WriteString(strings.Join(b.lines, "\n"))
		} else {
			sb.WriteString(strings.Repeat("\n", b.height()-1))
		}
	}
	return sb.String()
}

func (m *Model) maxOffset() int {
	return max(0, m.total-m.vp.Height)
}

func (m *Model) clamp(off int) int {
	return max(0, min(off, m.maxOffset()))
}

// Offset is the current scroll offset in rows.
func (m *Model) Offset() int { return int(math.Round(m.pos)) }

// Revealed returns the ids revealed so far.
func (m *Model) Revealed() []string { return m.store.Revealed() }

func (m *Model) MenuOpen() bool { return m.menuOpen }

func (m *Model) Animating() bool { return m.animating }

// Scrolled reports the navbar scrolled state.
func (m *Model) Scrolled() bool { return m.shell.Scrolled() }

// Section returns the section the viewport is currently in.
func (m *Model) Section() string {
	current, best := content.SectionHome, -1
	for name, y := range m.anchors {
		if y <= m.Offset() && y > best {
			current, best = name, y
		}
	}
	return current
}

func (m *Model) View() string {
	body := m.vp.View()
	if m.menuOpen {
		body = lipgloss.Place(m.width, m.vp.Height, lipgloss.Center, lipgloss.Center, m.menuView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.navbarView(), body, m.help.View(m.keys))
}

func (m *Model) navbarView() string {
	current := m.Section()
	items := make([]string, 0, len(m.site.Nav)+1)
	items = append(items, m.styles.Gradient(m.site.Brand.Name))
	for _, link := range m.site.Nav {
		style := m.styles.NavItem
		if link.Section == current {
			style = m.styles.NavActive
		}
		items = append(items, style.Render(link.Label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, items...)
	if m.Scrolled() {
		return m.styles.NavbarScrolled.Render(bar)
	}
	// keep the chrome height stable when the border is hidden
	return m.styles.Navbar.Render(bar) + "\n"
}

func (m *Model) menuView() string {
	lines := make([]string, 0, len(m.site.Nav))
	for i, link := range m.site.Nav {
		if i == m.menuIndex {
			lines = append(lines, m.styles.MenuActive.Render("› "+link.Label))
		} else {
			lines = append(lines, m.styles.MenuItem.Render("  "+link.Label))
		}
	}
	return m.styles.Menu.Render(strings.Join(lines, "\n"))
}
