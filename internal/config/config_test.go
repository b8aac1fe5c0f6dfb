package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := loadDefaultConfig()

	assert.Equal(t, 100.0, cfg.Slideover.FlickVelocity)
	assert.Equal(t, 400*time.Millisecond, cfg.Slideover.Duration())
	assert.Equal(t, 0.9, cfg.Slideover.SpringDamping)
	assert.Equal(t, 60, cfg.Slideover.FrameRate)
	assert.True(t, cfg.Slideover.Animate)
	assert.Equal(t, 1, cfg.Slideover.HandleHeight)
	assert.Equal(t, StringList{"esc"}, cfg.Keys.Cancel)
	assert.Equal(t, StringList{"q", "ctrl+c"}, cfg.Keys.Quit)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	cfg := loadDefaultConfig()

	err := cfg.Load(`
[slideover]
flick_velocity = 250
animate = false
`)
	require.NoError(t, err)
	assert.Equal(t, 250.0, cfg.Slideover.FlickVelocity)
	assert.False(t, cfg.Slideover.Animate)
	assert.Equal(t, 0.9, cfg.Slideover.SpringDamping, "untouched keys keep their defaults")
}

func TestLoad_KeysStringOrList(t *testing.T) {
	cfg := &Config{}
	err := cfg.Load(`
[keys]
quit = "x"
toggle = ["t", "enter"]
`)
	require.NoError(t, err)
	assert.Equal(t, StringList{"x"}, cfg.Keys.Quit)
	assert.Equal(t, StringList{"t", "enter"}, cfg.Keys.Toggle)
}

func TestLoad_KeysRejectsNonStrings(t *testing.T) {
	cfg := &Config{}
	err := cfg.Load(`
[keys]
quit = [1, 2]
`)
	assert.Error(t, err)
}

func TestLoad_Colors_StringAndObject(t *testing.T) {
	content := `
[ui.colors]
simple = "red"
complex = { fg = "blue", bg = "white", bold = true }
`
	cfg := &Config{}
	err := cfg.Load(content)
	require.NoError(t, err)
	assert.Len(t, cfg.UI.Colors, 2)

	assert.Equal(t, "red", cfg.UI.Colors["simple"].Fg)
	assert.Equal(t, "", cfg.UI.Colors["simple"].Bg)
	assert.Nil(t, cfg.UI.Colors["simple"].Bold)

	assert.Equal(t, "blue", cfg.UI.Colors["complex"].Fg)
	assert.Equal(t, "white", cfg.UI.Colors["complex"].Bg)
	if assert.NotNil(t, cfg.UI.Colors["complex"].Bold) {
		assert.True(t, *cfg.UI.Colors["complex"].Bold)
	}
}

func TestLoad_ColorsMergeWithBase(t *testing.T) {
	cfg := loadDefaultConfig()
	defaults := len(cfg.UI.Colors)

	err := cfg.Load(`
[ui.colors]
handle = "red"
extra = "blue"
`)
	require.NoError(t, err)
	assert.Len(t, cfg.UI.Colors, defaults+1)
	assert.Equal(t, "red", cfg.UI.Colors["handle"].Fg)
	assert.Equal(t, "252", cfg.UI.Colors["top"].Bg, "colours not in the overlay survive")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SlideoverConfig)
		wantErr string
	}{
		{"negative_flick", func(s *SlideoverConfig) { s.FlickVelocity = -1 }, "flick_velocity"},
		{"zero_duration", func(s *SlideoverConfig) { s.AnimationDuration = 0 }, "animation_duration"},
		{"damping_too_high", func(s *SlideoverConfig) { s.SpringDamping = 1.5 }, "spring_damping"},
		{"damping_zero", func(s *SlideoverConfig) { s.SpringDamping = 0 }, "spring_damping"},
		{"zero_frame_rate", func(s *SlideoverConfig) { s.FrameRate = 0 }, "frame_rate"},
		{"no_handle", func(s *SlideoverConfig) { s.HandleHeight = 0 }, "handle_height"},
		{"negative_top", func(s *SlideoverConfig) { s.TopCollapsedHeight = -2 }, "top_collapsed_height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadDefaultConfig()
			tt.mutate(&cfg.Slideover)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeColors(t *testing.T) {
	base := map[string]Color{"top": {Fg: "1"}, "handle": {Fg: "2"}}

	merged := mergeColors(base, map[string]Color{"handle": {Fg: "3"}})
	assert.Equal(t, map[string]Color{"top": {Fg: "1"}, "handle": {Fg: "3"}}, merged)
	assert.Equal(t, "2", base["handle"].Fg, "base is not modified")

	assert.Nil(t, mergeColors(nil, nil))
}
