package env

// Mapping is a string map that remembers insertion order. Setting an existing
// key replaces its value but keeps its original position.
type Mapping struct {
	keys   []string
	values map[string]string
}

// NewMapping creates an empty mapping
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]string)}
}

// Set stores value under key
func (m *Mapping) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key
func (m *Mapping) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key. Missing keys are ignored.
func (m *Mapping) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Each calls fn for every entry in insertion order
func (m *Mapping) Each(fn func(key, value string)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// Map returns a plain map copy
func (m *Mapping) Map() map[string]string {
	out := make(map[string]string, len(m.keys))
	for _, k := range m.keys {
		out[k] = m.values[k]
	}
	return out
}

// Environ returns KEY=VALUE pairs suitable for exec.Cmd.Env
func (m *Mapping) Environ() []string {
	out := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, k+"="+m.values[k])
	}
	return out
}

// Clone returns an independent copy
func (m *Mapping) Clone() *Mapping {
	c := &Mapping{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]string, len(m.values)),
	}
	copy(c.keys, m.keys)
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}
