package common

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/slideover-tui/slideover/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestPalette_SpecificSelectorInherits(t *testing.T) {
	bold := true
	p := NewPalette()
	p.Update(map[string]config.Color{
		"handle":          {Fg: "250", Bg: "0"},
		"handle dragging": {Fg: "blue", Bold: &bold},
	})

	style := p.Get("handle dragging")
	assert.Equal(t, lipgloss.Color("4"), style.GetForeground())
	assert.Equal(t, lipgloss.Color("0"), style.GetBackground())
	assert.True(t, style.GetBold())

	assert.Equal(t, lipgloss.Color("250"), p.Get("handle").GetForeground())
}

func TestPalette_UpdateInvalidatesCache(t *testing.T) {
	p := NewPalette()
	p.Update(map[string]config.Color{"status": {Fg: "red"}})
	assert.Equal(t, lipgloss.Color("1"), p.Get("status").GetForeground())

	p.Update(map[string]config.Color{"status": {Fg: "bright red"}})
	assert.Equal(t, lipgloss.Color("9"), p.Get("status").GetForeground())
}

func TestPalette_UnknownSelector(t *testing.T) {
	p := NewPalette()
	style := p.Get("nothing here")
	assert.Equal(t, lipgloss.NoColor{}, style.GetForeground())
	assert.False(t, style.GetBold())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"#ff0000", lipgloss.Color("#ff0000")},
		{"42", lipgloss.Color("42")},
		{"cyan", lipgloss.Color("6")},
		{"bright white", lipgloss.Color("15")},
		{"256", lipgloss.NoColor{}},
		{"chartreuse", lipgloss.NoColor{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseColor(tt.in))
		})
	}
}
