package env

import (
	"strings"
)

// Apply overlays delta on base and expands each %KEY% self reference with the
// base value of the same key, or the empty string when base lacks it. Other
// placeholders are left alone. The result is a new mapping.
func Apply(base, delta *Mapping) *Mapping {
	out := base.Clone()
	delta.Each(func(key, value string) {
		prev, _ := base.Get(key)
		out.Set(key, strings.ReplaceAll(value, SelfReference(key), prev))
	})
	return out
}
