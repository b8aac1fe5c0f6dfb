package common

import (
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
)

var (
	debounceMu  sync.Mutex
	generations = map[string]uint64{}
)

// Debounce delivers msg after duration unless another Debounce call with the
// same identifier is made in the meantime; only the latest call delivers.
func Debounce(identifier string, duration time.Duration, msg tea.Msg) tea.Cmd {
	debounceMu.Lock()
	generations[identifier]++
	generation := generations[identifier]
	debounceMu.Unlock()

	return tea.Tick(duration, func(time.Time) tea.Msg {
		debounceMu.Lock()
		defer debounceMu.Unlock()
		if generations[identifier] != generation {
			return nil
		}
		delete(generations, identifier)
		return msg
	})
}
