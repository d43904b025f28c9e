package vcvars

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"
)

// failureTailLines is how much of a failed run's output is kept in the error
const failureTailLines = 5

// Runner executes a script and returns its combined stdout and stderr
type Runner interface {
	Run(ctx context.Context, scriptPath string) (string, error)
}

// ExecRunner runs scripts as child processes
type ExecRunner struct {
	// Shell is prepended to the script path, e.g. cmd.exe /d /c.
	// When empty the script is executed directly.
	Shell  []string
	logger *log.Logger
}

// NewExecRunner creates a runner using shell as the interpreter prefix
func NewExecRunner(shell []string, logger *log.Logger) *ExecRunner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ExecRunner{Shell: shell, logger: logger}
}

// Run waits for the script to exit. A spawn failure or non-zero exit is
// returned wrapping ErrExecutionFailed.
func (r *ExecRunner) Run(ctx context.Context, scriptPath string) (string, error) {
	argv := append(append([]string{}, r.Shell...), scriptPath)
	r.logger.Printf("[exec] %v", argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), executionError(err, string(out))
	}
	r.logger.Printf("[exec] captured %d bytes", len(out))
	return string(out), nil
}

// executionError wraps err as ErrExecutionFailed, appending the last lines of
// output where vcvarsall prints its [ERROR:...] diagnostics.
func executionError(err error, output string) error {
	if tail := outputTail(output, failureTailLines); tail != "" {
		return fmt.Errorf("%w: %v: %s", ErrExecutionFailed, err, tail)
	}
	return fmt.Errorf("%w: %v", ErrExecutionFailed, err)
}

func outputTail(output string, n int) string {
	var kept []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	if len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return strings.Join(kept, "; ")
}
