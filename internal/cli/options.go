// internal/cli/options.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/vcenv"
	"github.com/arc-language/vcenv/pkg/arch"
	"github.com/arc-language/vcenv/pkg/core"
)

// optionFlags holds the vcvarsall options shared by env and run
type optionFlags struct {
	arch         string
	host         string
	target       string
	platformType string
	sdk          string
	vcVersion    string
	spectre      bool
	changed      func(name string) bool
}

func addOptionFlags(cmd *cobra.Command, f *optionFlags) {
	cmd.Flags().StringVar(&f.arch, "arch", "", "host/target pairing token (x86, amd64, amd64_arm64, ...)")
	cmd.Flags().StringVar(&f.host, "host", "", "compiler architecture (x86, x64), used with --target")
	cmd.Flags().StringVar(&f.target, "target", "", "output architecture (x86, x64, ARM, ARM64), used with --host")
	cmd.Flags().StringVar(&f.platformType, "platform-type", "", "store or uwp")
	cmd.Flags().StringVar(&f.sdk, "sdk", "", "Windows SDK version, e.g. 10.0.22621.0 or 8.1")
	cmd.Flags().StringVar(&f.vcVersion, "vc-version", "", "compiler toolset version, e.g. 14.29")
	cmd.Flags().BoolVar(&f.spectre, "spectre", false, "use Spectre-mitigated libraries")
	f.changed = func(name string) bool { return cmd.Flags().Changed(name) }
}

// resolveOptions layers command-line flags over the configured options.
// A nil result lets the library choose the pairing for this machine.
func resolveOptions(cfg *core.Config, f *optionFlags) (*vcenv.Options, error) {
	merged := *cfg
	if f.arch != "" && (f.host != "" || f.target != "") {
		return nil, fmt.Errorf("--arch cannot be combined with --host/--target")
	}
	if f.arch != "" {
		merged.Arch = f.arch
	}
	if f.host != "" || f.target != "" {
		if f.host == "" || f.target == "" {
			return nil, fmt.Errorf("--host and --target must be given together")
		}
		a, err := arch.FromHostTarget(arch.HostTarget{Host: arch.Host(f.host), Target: arch.Target(f.target)})
		if err != nil {
			return nil, err
		}
		tok, err := a.Token()
		if err != nil {
			return nil, err
		}
		merged.Arch = tok
	}
	if f.platformType != "" {
		merged.PlatformType = f.platformType
	}
	if f.sdk != "" {
		merged.WindowsSDKVersion = f.sdk
	}
	if f.vcVersion != "" {
		merged.VCVersion = f.vcVersion
	}
	if f.changed != nil && f.changed("spectre") {
		merged.Spectre = f.spectre
	}
	return vcenv.OptionsFromConfig(&merged)
}
