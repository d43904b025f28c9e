// internal/cli/run.go
package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/arc-language/vcenv/pkg/env"
)

var runFlags optionFlags

var runCmd = &cobra.Command{
	Use:   "run [flags] -- <command> [args...]",
	Short: "Run a command inside the MSVC environment",
	Long: `Apply the variables vcvarsall sets to the current environment and run a command.

Examples:
  vcenv run -- cl.exe /nologo hello.c
  vcenv run --arch x86 -- nmake`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	addOptionFlags(runCmd, &runFlags)
}

func runRun(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(config, &runFlags)
	if err != nil {
		return err
	}

	delta, err := newClient().GetEnvironment(context.Background(), config.Installation, opts)
	if err != nil {
		return fmt.Errorf("getting environment: %w", err)
	}

	full := env.Apply(env.FromEnviron(os.Environ()), delta)

	// Execute command with environment
	child := exec.Command(args[0], args[1:]...)
	child.Env = full.Environ()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()
	child.Stdin = os.Stdin

	if err := child.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("running %s: %w", args[0], err)
	}
	return nil
}
