package platform

import (
	"fmt"
	"os"
	"runtime"

	"github.com/arc-language/vcenv/pkg/arch"
)

// Platform represents the detected system platform
type Platform struct {
	OS      string            // linux, darwin, windows
	Arch    string            // amd64, arm64, 386, arm
	Default arch.Architecture // Pairing used when the caller gives no options
	Shell   []string          // Command prefix that runs a batch file, nil if none
}

// Detect detects the current platform
func Detect() *Platform {
	return &Platform{
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
		Default: DefaultArchitecture(runtime.GOARCH),
		Shell:   batchShell(runtime.GOOS),
	}
}

// DefaultArchitecture picks the host/target pairing for a process running on
// goarch. ARM64 machines run the x64 compiler under emulation and target ARM64;
// 32-bit processes stay on x86; everything else builds x64 natively.
func DefaultArchitecture(goarch string) arch.Architecture {
	switch goarch {
	case "arm64":
		return arch.X64_ARM64
	case "386":
		return arch.X86
	default:
		return arch.X64
	}
}

// IsWindows reports whether vcvarsall can run on this platform
func (p *Platform) IsWindows() bool {
	return p.OS == "windows"
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (default: %s, shell: %v)",
		p.OS, p.Arch, p.Default, p.Shell)
}

// batchShell returns the interpreter prefix for .bat files. COMSPEC wins over
// a PATH lookup, matching how cmd itself resolves its shell.
func batchShell(goos string) []string {
	if goos != "windows" {
		return nil
	}
	if comspec := os.Getenv("ComSpec"); comspec != "" {
		return []string{comspec, "/d", "/c"}
	}
	if path, ok := lookCommand("cmd.exe"); ok {
		return []string{path, "/d", "/c"}
	}
	return []string{"cmd.exe", "/d", "/c"}
}
