package env

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotenv(t *testing.T) {
	m := NewMapping()
	m.Set("C", "x y")
	m.Set("B", "3")

	out, err := Dotenv(m)
	require.NoError(t, err)
	assert.Equal(t, "B=3\nC=\"x y\"", out)
}

func TestDotenvRoundTrip(t *testing.T) {
	m := NewMapping()
	m.Set("VCToolsVersion", "14.38.33130")
	m.Set("Platform", "x64")
	m.Set("PATH", "%PATH%;bin")

	var buf bytes.Buffer
	require.NoError(t, WriteDotenv(&buf, m))

	back, err := ReadDotenv(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"PATH", "Platform", "VCToolsVersion"}, back.Keys())
	assert.Equal(t, m.Map(), back.Map())
}
