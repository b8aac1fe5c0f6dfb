package ui

import (
	"charm.land/bubbles/v2/key"
	"github.com/slideover-tui/slideover/internal/config"
)

type keyMap struct {
	ExpandTop    key.Binding
	ExpandBottom key.Binding
	Toggle       key.Binding
	Grow         key.Binding
	Shrink       key.Binding
	Cancel       key.Binding
	Quit         key.Binding
}

func newKeyMap(k config.KeysConfig) keyMap {
	return keyMap{
		ExpandTop:    binding(k.ExpandTop, "collapse header"),
		ExpandBottom: binding(k.ExpandBottom, "lower card"),
		Toggle:       binding(k.Toggle, "toggle"),
		Grow:         binding(k.Grow, "grow"),
		Shrink:       binding(k.Shrink, "shrink"),
		Cancel:       binding(k.Cancel, "cancel drag"),
		Quit:         binding(k.Quit, "quit"),
	}
}

func binding(keys config.StringList, help string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
}

// ShortHelp lists the bindings shown in the status line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Grow, k.Shrink, k.Quit}
}
