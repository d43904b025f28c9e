package env

import (
	"strings"
)

// Diff returns the variables that are new or changed between the before and
// after dumps. Variables removed by the script are not reported.
func Diff(before, after []string) *Mapping {
	return DiffMappings(Parse(before), Parse(after))
}

// DiffMappings is Diff on already parsed mappings. Neither input is modified.
func DiffMappings(before, after *Mapping) *Mapping {
	delta := after.Clone()
	after.Each(func(key, value string) {
		old, ok := before.Get(key)
		switch {
		case !ok:
			// new variable, kept as is
		case old == value:
			delta.Delete(key)
		default:
			delta.Set(key, substituteSelf(key, old, value))
		}
	})
	return delta
}

// SelfReference is the placeholder standing for key's previous value
func SelfReference(key string) string {
	return "%" + key + "%"
}

// substituteSelf replaces every occurrence of old inside value with a
// reference to key. An empty old value never matches.
func substituteSelf(key, old, value string) string {
	if old == "" {
		return value
	}
	return strings.ReplaceAll(value, old, SelfReference(key))
}
