// Package theme holds the visual configuration of the site: a colour palette,
// whether surfaces are blurred, and whether the page background is a gradient.
package theme

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	Glass        = "glass"
	Professional = "professional"

	glassBackground = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
)

// Shade is a main colour with its light and dark variants.
type Shade struct {
	Main  string `yaml:"main"`
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

type Neutral struct {
	Dark    string `yaml:"dark"`
	Gray    string `yaml:"gray"`
	Light   string `yaml:"light"`
	Lighter string `yaml:"lighter"`
	White   string `yaml:"white"`
}

type Status struct {
	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
	Info    string `yaml:"info"`
}

type Palette struct {
	Primary   Shade   `yaml:"primary"`
	Secondary Shade   `yaml:"secondary"`
	Neutral   Neutral `yaml:"neutral"`
	Status    Status  `yaml:"status"`
}

// Theme is the configuration object the page components read.
type Theme struct {
	Name     string  `yaml:"name"`
	Palette  Palette `yaml:"palette"`
	Blur     bool    `yaml:"blur"`
	Gradient bool    `yaml:"gradient"`
	// Background is the page background used when Gradient is set.
	Background string `yaml:"background,omitempty"`
}

var basePalette = Palette{
	Primary:   Shade{Main: "#E91E8C", Light: "#FF6BB5", Dark: "#C41570"},
	Secondary: Shade{Main: "#4A7FC1", Light: "#6FA3E0", Dark: "#3A5F9A"},
	Neutral: Neutral{
		Dark:    "#2D3436",
		Gray:    "#636E72",
		Light:   "#B2BEC3",
		Lighter: "#F5F6F7",
		White:   "#FFFFFF",
	},
	Status: Status{
		Success: "#00B894",
		Warning: "#FDCB6E",
		Error:   "#D63031",
		Info:    "#4A7FC1",
	},
}

var presets = map[string]Theme{
	Glass: {
		Name:       Glass,
		Palette:    basePalette,
		Blur:       true,
		Gradient:   true,
		Background: glassBackground,
	},
	Professional: {
		Name:    Professional,
		Palette: basePalette,
	},
}

// Default returns the glass preset.
func Default() Theme {
	return presets[Glass]
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Theme, bool) {
	t, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load resolves the theme to use. When file is set, its YAML is decoded on top
// of the named preset (or the default preset when name is unknown); fields left
// out of the file keep the preset's values.
func Load(name, file string) (Theme, error) {
	base, ok := Lookup(name)
	if !ok && file == "" {
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
	if !ok {
		base = Default()
		base.Name = name
	}
	if file == "" {
		return base, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme file: %w", err)
	}
	return Parse(data, base)
}

// Parse decodes YAML theme data over base.
func Parse(data []byte, base Theme) (Theme, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	if t.Name == "" {
		t.Name = base.Name
	}
	if t.Gradient && t.Background == "" {
		t.Background = glassBackground
	}
	return t, nil
}

// CSSVars returns the custom properties the stylesheet reads.
func (t Theme) CSSVars() string {
	p := t.Palette
	vars := [][2]string{
		{"--primary", p.Primary.Main},
		{"--primary-light", p.Primary.Light},
		{"--primary-dark", p.Primary.Dark},
		{"--secondary", p.Secondary.Main},
		{"--secondary-light", p.Secondary.Light},
		{"--secondary-dark", p.Secondary.Dark},
		{"--neutral-dark", p.Neutral.Dark},
		{"--neutral-gray", p.Neutral.Gray},
		{"--neutral-light", p.Neutral.Light},
		{"--neutral-lighter", p.Neutral.Lighter},
		{"--neutral-white", p.Neutral.White},
		{"--success", p.Status.Success},
		{"--warning", p.Status.Warning},
		{"--error", p.Status.Error},
		{"--info", p.Status.Info},
	}
	if t.Gradient {
		vars = append(vars, [2]string{"--page-bg", t.Background})
	} else {
		vars = append(vars, [2]string{"--page-bg", p.Neutral.Lighter})
	}
	if t.Blur {
		vars = append(vars, [2]string{"--surface-blur", "blur(20px)"})
	} else {
		vars = append(vars, [2]string{"--surface-blur", "none"})
	}

	var b strings.Builder
	b.WriteString(":root{")
	for _, v := range vars {
		if v[1] == "" {
			continue
		}
		b.WriteString(v[0])
		b.WriteByte(':')
		b.WriteString(v[1])
		b.WriteByte(';')
	}
	b.WriteString("}")
	return b.String()
}

// BodyClass returns the classes that switch the stylesheet's variant rules.
func (t Theme) BodyClass() string {
	classes := []string{"theme-" + t.Name}
	if t.Blur {
		classes = append(classes, "has-blur")
	}
	if t.Gradient {
		classes = append(classes, "has-gradient")
	}
	return strings.Join(classes, " ")
}
