package config

import (
	"embed"
	"errors"
	"fmt"
	"time"
)

//go:embed default
var configFS embed.FS

// Current is the active configuration. It starts from the embedded defaults
// and is overlaid with the user's config file at startup.
var Current = loadDefaultConfig()

type Config struct {
	Slideover SlideoverConfig `toml:"slideover"`
	Keys      KeysConfig      `toml:"keys"`
	UI        UIConfig        `toml:"ui"`
}

type SlideoverConfig struct {
	FlickVelocity      float64 `toml:"flick_velocity"`
	AnimationDuration  float64 `toml:"animation_duration"`
	SpringDamping      float64 `toml:"spring_damping"`
	FrameRate          int     `toml:"frame_rate"`
	Animate            bool    `toml:"animate"`
	HandleHeight       int     `toml:"handle_height"`
	TopCollapsedHeight int     `toml:"top_collapsed_height"`
}

// Duration returns the animation duration as a time.Duration.
func (s SlideoverConfig) Duration() time.Duration {
	return time.Duration(s.AnimationDuration * float64(time.Second))
}

type KeysConfig struct {
	ExpandTop    StringList `toml:"expand_top"`
	ExpandBottom StringList `toml:"expand_bottom"`
	Toggle       StringList `toml:"toggle"`
	Grow         StringList `toml:"grow"`
	Shrink       StringList `toml:"shrink"`
	Cancel       StringList `toml:"cancel"`
	Quit         StringList `toml:"quit"`
}

type UIConfig struct {
	Colors map[string]Color `toml:"colors"`
}

// StringList accepts either a single string or an array of strings.
type StringList []string

func (s *StringList) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*s = StringList{v}
	case []any:
		list := make(StringList, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string in list, got %T", item)
			}
			list = append(list, str)
		}
		*s = list
	default:
		return fmt.Errorf("expected string or list of strings, got %T", data)
	}
	return nil
}

// Color accepts either a plain foreground colour or a table
// { fg, bg, bold }.
type Color struct {
	Fg   string `toml:"fg"`
	Bg   string `toml:"bg"`
	Bold *bool  `toml:"bold"`
}

func (c *Color) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		c.Fg = v
		return nil
	case map[string]any:
		if fg, ok := v["fg"].(string); ok {
			c.Fg = fg
		}
		if bg, ok := v["bg"].(string); ok {
			c.Bg = bg
		}
		if bold, ok := v["bold"].(bool); ok {
			c.Bold = &bold
		}
		return nil
	}
	return fmt.Errorf("expected colour string or table, got %T", data)
}

// Validate reports every setting that cannot be used, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	s := c.Slideover
	if s.FlickVelocity < 0 {
		errs = append(errs, fmt.Errorf("slideover.flick_velocity must not be negative, got %v", s.FlickVelocity))
	}
	if s.AnimationDuration <= 0 {
		errs = append(errs, fmt.Errorf("slideover.animation_duration must be positive, got %v", s.AnimationDuration))
	}
	if s.SpringDamping <= 0 || s.SpringDamping > 1 {
		errs = append(errs, fmt.Errorf("slideover.spring_damping must be in (0, 1], got %v", s.SpringDamping))
	}
	if s.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("slideover.frame_rate must be positive, got %d", s.FrameRate))
	}
	if s.HandleHeight < 1 {
		errs = append(errs, fmt.Errorf("slideover.handle_height must be at least 1, got %d", s.HandleHeight))
	}
	if s.TopCollapsedHeight < 0 {
		errs = append(errs, fmt.Errorf("slideover.top_collapsed_height must not be negative, got %d", s.TopCollapsedHeight))
	}
	return errors.Join(errs...)
}
