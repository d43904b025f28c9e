package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arc-language/vcenv/pkg/arch"
)

func TestDefaultArchitecture(t *testing.T) {
	cases := map[string]arch.Architecture{
		"arm64":   arch.X64_ARM64,
		"386":     arch.X86,
		"amd64":   arch.X64,
		"riscv64": arch.X64,
		"":        arch.X64,
	}
	for goarch, want := range cases {
		assert.Equal(t, want, DefaultArchitecture(goarch), "goarch %q", goarch)
	}
}

func TestDetect(t *testing.T) {
	p := Detect()
	assert.Equal(t, runtime.GOOS, p.OS)
	assert.Equal(t, runtime.GOARCH, p.Arch)
	assert.Equal(t, DefaultArchitecture(runtime.GOARCH), p.Default)
	assert.Equal(t, runtime.GOOS == "windows", p.IsWindows())
	if !p.IsWindows() {
		assert.Nil(t, p.Shell)
	}
}

func TestBatchShell(t *testing.T) {
	assert.Nil(t, batchShell("linux"))

	t.Setenv("ComSpec", `C:\Windows\system32\cmd.exe`)
	assert.Equal(t, []string{`C:\Windows\system32\cmd.exe`, "/d", "/c"}, batchShell("windows"))
}
