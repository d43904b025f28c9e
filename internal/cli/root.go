// internal/cli/root.go
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/vcenv"
	"github.com/arc-language/vcenv/pkg/core"
)

var (
	cfgFile     string
	installPath string
	debug       bool
	config      *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vcenv",
	Short: "MSVC developer environment extractor",
	Long: `vcenv - MSVC developer environment extractor

Runs vcvarsall.bat for a Visual Studio installation and reports only the
environment variables it adds or changes, so native builds can run without
a Developer Command Prompt.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/vcenv/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&installPath, "install-path", "", "Visual Studio installation root (overrides config and "+core.InstallPathEnv+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(archsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if installPath != "" {
		config.Installation.InstallationPath = installPath
	}
	if debug {
		config.Debug = true
	}
}

// newClient builds a client from the loaded configuration
func newClient() *vcenv.Client {
	logger := log.New(io.Discard, "", 0)
	if config.Debug {
		logger = log.New(os.Stderr, "[vcenv] ", log.LstdFlags)
	}
	return vcenv.New(&vcenv.Config{
		TempDir: config.TempDir,
		Logger:  logger,
	})
}
