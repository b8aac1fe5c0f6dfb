package config

import "maps"

// mergeColors overlays colour selectors on top of base. Selectors missing
// from the overlay keep their base value.
func mergeColors(base, overlay map[string]Color) map[string]Color {
	if len(base) == 0 {
		return overlay
	}
	merged := make(map[string]Color, len(base)+len(overlay))
	maps.Copy(merged, base)
	maps.Copy(merged, overlay)
	return merged
}
