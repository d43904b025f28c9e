package env

import (
	"fmt"
	"io"

	"github.com/joho/godotenv"
)

// Dotenv renders m in dotenv format, one sorted KEY="VALUE" line per entry
func Dotenv(m *Mapping) (string, error) {
	out, err := godotenv.Marshal(m.Map())
	if err != nil {
		return "", fmt.Errorf("marshaling dotenv: %w", err)
	}
	return out, nil
}

// WriteDotenv writes m to w in dotenv format
func WriteDotenv(w io.Writer, m *Mapping) error {
	out, err := Dotenv(m)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("writing dotenv: %w", err)
	}
	return nil
}

// ReadDotenv loads a mapping written by WriteDotenv. Keys come back sorted.
func ReadDotenv(r io.Reader) (*Mapping, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing dotenv: %w", err)
	}
	m := NewMapping()
	for _, k := range sortedKeys(values) {
		m.Set(k, values[k])
	}
	return m, nil
}
