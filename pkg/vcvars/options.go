package vcvars

import (
	"runtime"

	"github.com/arc-language/vcenv/pkg/arch"
	"github.com/arc-language/vcenv/pkg/platform"
)

// Args builds the vcvarsall argument list. A nil opts selects the default
// pairing for the running process. The order is fixed: architecture,
// platform type, SDK version, toolset flag, spectre.
func Args(opts *Options) ([]string, error) {
	return argsFor(opts, runtime.GOARCH)
}

func argsFor(opts *Options, goarch string) ([]string, error) {
	if opts == nil {
		opts = &Options{Arch: platform.DefaultArchitecture(goarch)}
	}

	var args []string
	if opts.Arch != arch.Unspecified {
		tok, err := opts.Arch.Token()
		if err != nil {
			return nil, err
		}
		args = append(args, tok)
	}
	if opts.PlatformType != PlatformDesktop {
		args = append(args, string(opts.PlatformType))
	}
	if opts.WindowsSDKVersion != "" {
		args = append(args, opts.WindowsSDKVersion)
	}
	if opts.VCVersion != "" {
		args = append(args, ToolsetFlag+opts.VCVersion)
	}
	if opts.Spectre {
		args = append(args, SpectreToken)
	}
	return args, nil
}
