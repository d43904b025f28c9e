// vcenv.go
package vcenv

import (
	"context"
	"fmt"

	"github.com/arc-language/vcenv/pkg/arch"
	"github.com/arc-language/vcenv/pkg/core"
	"github.com/arc-language/vcenv/pkg/env"
	"github.com/arc-language/vcenv/pkg/vcvars"
)

// Re-export types for convenience
type (
	Architecture = arch.Architecture
	HostTarget   = arch.HostTarget
	Options      = vcvars.Options
	PlatformType = vcvars.PlatformType
	Config       = vcvars.Config
	Mapping      = env.Mapping
	// Installation is the record a discovery tool such as vswhere supplies.
	Installation = core.Installation
)

// Re-export architecture pairings
const (
	X86       = arch.X86
	X86_X64   = arch.X86_X64
	X86_ARM   = arch.X86_ARM
	X86_ARM64 = arch.X86_ARM64
	X64       = arch.X64
	X64_X86   = arch.X64_X86
	X64_ARM   = arch.X64_ARM
	X64_ARM64 = arch.X64_ARM64
)

// Re-export platform types
const (
	PlatformStore = vcvars.PlatformStore
	PlatformUWP   = vcvars.PlatformUWP
)

// Client extracts vcvarsall environments
type Client struct {
	manager *vcvars.Manager
}

// New creates a client. A nil config uses process execution and the system
// temp directory.
func New(config *Config) *Client {
	return &Client{manager: vcvars.NewManager(config)}
}

// GetEnvironment returns the variables vcvarsall adds or changes for inst.
// Changed values reference their previous value as %NAME%. A nil opts picks
// the pairing matching the running process.
func (c *Client) GetEnvironment(ctx context.Context, inst Installation, opts *Options) (*Mapping, error) {
	if inst.InstallationPath == "" {
		return nil, fmt.Errorf("installation path is required")
	}
	return c.manager.Environment(ctx, inst.InstallationPath, opts)
}

// GetEnvironment runs GetEnvironment on a client with default settings
func GetEnvironment(ctx context.Context, inst Installation, opts *Options) (*Mapping, error) {
	return New(nil).GetEnvironment(ctx, inst, opts)
}

// OptionsFromConfig converts configured options. It returns nil when the
// configuration sets none, so the default pairing applies.
func OptionsFromConfig(cfg *core.Config) (*Options, error) {
	if cfg.Arch == "" && cfg.PlatformType == "" && cfg.WindowsSDKVersion == "" &&
		cfg.VCVersion == "" && !cfg.Spectre {
		return nil, nil
	}

	opts := &Options{
		PlatformType:      PlatformType(cfg.PlatformType),
		WindowsSDKVersion: cfg.WindowsSDKVersion,
		VCVersion:         cfg.VCVersion,
		Spectre:           cfg.Spectre,
	}
	if cfg.Arch != "" {
		a, err := arch.Parse(cfg.Arch)
		if err != nil {
			return nil, fmt.Errorf("config arch: %w", err)
		}
		opts.Arch = a
	}
	switch opts.PlatformType {
	case vcvars.PlatformDesktop, PlatformStore, PlatformUWP:
	default:
		return nil, fmt.Errorf("config platform_type: unsupported value %q", cfg.PlatformType)
	}
	return opts, nil
}
