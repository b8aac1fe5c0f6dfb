package common

import (
	"image/color"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/slideover-tui/slideover/internal/config"
)

var DefaultPalette = NewPalette()

// Palette resolves space separated selectors such as "handle dragging" to
// styles. A selector inherits from every shorter selector it contains, the
// most specific one winning, so "handle dragging" falls back to "handle" and
// "dragging" for the attributes it does not set.
type Palette struct {
	styles map[string]lipgloss.Style
	cache  map[string]lipgloss.Style
}

func NewPalette() *Palette {
	return &Palette{
		styles: make(map[string]lipgloss.Style),
		cache:  make(map[string]lipgloss.Style),
	}
}

// Update adds or replaces the styles for the given selectors.
func (p *Palette) Update(colors map[string]config.Color) {
	for selector, c := range colors {
		p.styles[normalize(selector)] = createStyleFrom(c)
	}
	clear(p.cache)
}

func (p *Palette) Get(selector string) lipgloss.Style {
	if style, ok := p.cache[selector]; ok {
		return style
	}
	fields := strings.Fields(selector)
	style := lipgloss.NewStyle()
	for start := range fields {
		for end := len(fields); end > start; end-- {
			if s, ok := p.styles[strings.Join(fields[start:end], " ")]; ok {
				style = style.Inherit(s)
			}
		}
	}
	p.cache[selector] = style
	return style
}

func normalize(selector string) string {
	return strings.Join(strings.Fields(selector), " ")
}

func createStyleFrom(c config.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Fg != "" {
		style = style.Foreground(parseColor(c.Fg))
	}
	if c.Bg != "" {
		style = style.Background(parseColor(c.Bg))
	}
	if c.Bold != nil {
		style = style.Bold(*c.Bold)
	}
	return style
}

var namedColors = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

func parseColor(c string) color.Color {
	if len(c) == 7 && c[0] == '#' {
		return lipgloss.Color(c)
	}
	if v, err := strconv.Atoi(c); err == nil && v >= 0 && v <= 255 {
		return lipgloss.Color(c)
	}
	name, bright := strings.CutPrefix(c, "bright ")
	if code, ok := namedColors[name]; ok {
		if bright {
			code += 8
		}
		return lipgloss.Color(strconv.Itoa(code))
	}
	return lipgloss.NoColor{}
}
