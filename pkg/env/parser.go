package env

import (
	"strings"
)

// Parse reads KEY=VALUE lines into a Mapping. Lines are trimmed; blank lines
// and lines without '=' are skipped. Only the first '=' separates the key, so
// values may contain '='. A later duplicate key overwrites the earlier value.
func Parse(lines []string) *Mapping {
	m := NewMapping()
	for _, line := range lines {
		if key, value, ok := parseLine(line); ok {
			m.Set(key, value)
		}
	}
	return m
}

// FromEnviron builds a Mapping from an os.Environ style slice
func FromEnviron(environ []string) *Mapping {
	return Parse(environ)
}

func parseLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", false
	}
	return strings.Cut(line, "=")
}

// Lines splits captured process output into lines, tolerating CRLF
func Lines(output string) []string {
	if output == "" {
		return nil
	}
	lines := strings.Split(output, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Split divides output at the first line equal to sentinel once trimmed.
// Lines before it form the before dump and lines after it the after dump; the
// sentinel itself belongs to neither. Without a sentinel all lines are before.
func Split(output, sentinel string) (before, after []string) {
	lines := Lines(output)
	for i, l := range lines {
		if strings.TrimSpace(l) == sentinel {
			return lines[:i], lines[i+1:]
		}
	}
	return lines, nil
}
