package vcvars

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arc-language/vcenv/pkg/env"
	"github.com/arc-language/vcenv/pkg/platform"
)

// Config configures the vcvars manager
type Config struct {
	TempDir   string    // Where generated scripts are written
	Shell     []string  // Interpreter prefix for batch files, detected when nil
	Runner    Runner    // Defaults to an ExecRunner
	TempFiles TempFiles // Defaults to UUIDTempFiles
	Logger    *log.Logger
}

// Manager runs vcvarsall and captures the environment it produces. A Manager
// holds no per-call state and may be used from several goroutines.
type Manager struct {
	runner Runner
	temps  TempFiles
	logger *log.Logger
}

// NewManager creates a manager, filling unset collaborators with defaults
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	runner := cfg.Runner
	if runner == nil {
		shell := cfg.Shell
		if shell == nil {
			shell = platform.Detect().Shell
		}
		runner = NewExecRunner(shell, logger)
	}

	temps := cfg.TempFiles
	if temps == nil {
		temps = UUIDTempFiles{Dir: cfg.TempDir}
	}

	return &Manager{
		runner: runner,
		temps:  temps,
		logger: logger,
	}
}

// Environment returns the variables vcvarsall adds or changes for the
// installation rooted at installPath.
func (m *Manager) Environment(ctx context.Context, installPath string, opts *Options) (*env.Mapping, error) {
	args, err := Args(opts)
	if err != nil {
		return nil, fmt.Errorf("resolving options: %w", err)
	}

	script, err := Locate(installPath)
	if err != nil {
		return nil, err
	}
	m.logger.Printf("Using %s %v", script, args)

	output, err := m.Capture(ctx, script, args)
	if err != nil {
		return nil, err
	}

	before, after := env.Split(output, Sentinel)
	m.logger.Printf("Captured %d lines before and %d lines after", len(before), len(after))

	delta := env.Diff(before, after)
	m.logger.Printf("✓ %d variables set by %s", delta.Len(), ScriptName)
	return delta, nil
}

// Capture writes the two-phase script for scriptPath, runs it and returns the
// raw output. The generated file is removed whether or not the run succeeds.
func (m *Manager) Capture(ctx context.Context, scriptPath string, args []string) (string, error) {
	batFile, err := m.temps.Allocate()
	if err != nil {
		if !errors.Is(err, ErrTempAllocation) {
			err = fmt.Errorf("%w: %v", ErrTempAllocation, err)
		}
		return "", &Error{Op: "allocate", Err: err}
	}

	defer m.remove(batFile)

	if err := os.WriteFile(batFile, []byte(BuildScript(scriptPath, args)), 0644); err != nil {
		return "", &Error{Op: "write script", Path: batFile, Err: err}
	}

	m.logger.Printf("Running %s", batFile)
	output, err := m.runner.Run(ctx, batFile)
	if err != nil {
		if !errors.Is(err, ErrExecutionFailed) {
			err = executionError(err, output)
		}
		return "", &Error{Op: "run", Path: batFile, Err: err}
	}
	return output, nil
}

func (m *Manager) remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		m.logger.Printf("Warning: removing %s: %v", path, err)
	}
}
