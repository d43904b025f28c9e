// errors.go
package vcenv

import (
	"github.com/arc-language/vcenv/pkg/arch"
	"github.com/arc-language/vcenv/pkg/vcvars"
)

var (
	// ErrScriptNotFound indicates vcvarsall.bat is missing from the installation
	ErrScriptNotFound = vcvars.ErrScriptNotFound

	// ErrTempAllocation indicates no temporary script path could be allocated
	ErrTempAllocation = vcvars.ErrTempAllocation

	// ErrExecutionFailed indicates the generated script failed to run
	ErrExecutionFailed = vcvars.ErrExecutionFailed

	// ErrUnknownArchitecture indicates a pairing, token or host/target pair has no mapping
	ErrUnknownArchitecture = arch.ErrUnknownArchitecture
)

// Error wraps an error with the operation and script path it concerns
type Error = vcvars.Error
