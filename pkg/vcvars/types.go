package vcvars

import (
	"errors"
	"fmt"

	"github.com/arc-language/vcenv/pkg/arch"
)

var (
	// ErrScriptNotFound indicates vcvarsall.bat is missing from the installation
	ErrScriptNotFound = errors.New("vcvarsall.bat not found")

	// ErrTempAllocation indicates no temporary script path could be allocated
	ErrTempAllocation = errors.New("cannot allocate temp file")

	// ErrExecutionFailed indicates the generated script failed to run
	ErrExecutionFailed = errors.New("execution failed")
)

// PlatformType selects the app platform vcvarsall configures
type PlatformType string

const (
	// PlatformDesktop leaves the choice to vcvarsall (desktop and console apps)
	PlatformDesktop PlatformType = ""
	PlatformStore   PlatformType = "store"
	PlatformUWP     PlatformType = "uwp"
)

// Options selects the toolchain configuration. Zero fields are omitted and
// leave vcvarsall to pick its own default.
type Options struct {
	Arch              arch.Architecture // Host/target pairing
	PlatformType      PlatformType      // store or uwp
	WindowsSDKVersion string            // Full version such as 10.0.10240.0, or 8.1
	VCVersion         string            // Compiler toolset version, e.g. 14.29
	Spectre           bool              // Use Spectre-mitigated libraries
}

// Error wraps an error with the operation and path it concerns
type Error struct {
	Op   string // Operation that failed
	Path string // Script path if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
