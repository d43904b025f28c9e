package arch

import (
	"errors"
	"fmt"
)

// ErrUnknownArchitecture is returned when a pairing, token or host/target pair
// has no mapping.
var ErrUnknownArchitecture = errors.New("unknown architecture")

// All returns every defined pairing in declaration order.
func All() []Architecture {
	return []Architecture{X86, X86_X64, X86_ARM, X86_ARM64, X64, X64_X86, X64_ARM, X64_ARM64}
}

// Token returns the argument vcvarsall expects for a.
func (a Architecture) Token() (string, error) {
	switch a {
	case X86:
		return "x86", nil
	case X86_X64:
		return "x86_amd64", nil
	case X86_ARM:
		return "x86_arm", nil
	case X86_ARM64:
		return "x86_arm64", nil
	case X64:
		return "amd64", nil
	case X64_X86:
		return "amd64_x86", nil
	case X64_ARM:
		return "amd64_arm", nil
	case X64_ARM64:
		return "amd64_arm64", nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownArchitecture, int(a))
}

func (a Architecture) String() string {
	if a == Unspecified {
		return "unspecified"
	}
	tok, err := a.Token()
	if err != nil {
		return fmt.Sprintf("Architecture(%d)", int(a))
	}
	return tok
}

// Parse maps a vcvarsall token back to its pairing. Matching is exact.
func Parse(token string) (Architecture, error) {
	switch token {
	case "x86":
		return X86, nil
	case "x86_amd64":
		return X86_X64, nil
	case "x86_arm":
		return X86_ARM, nil
	case "x86_arm64":
		return X86_ARM64, nil
	case "amd64":
		return X64, nil
	case "amd64_x86":
		return X64_X86, nil
	case "amd64_arm":
		return X64_ARM, nil
	case "amd64_arm64":
		return X64_ARM64, nil
	}
	return Unspecified, fmt.Errorf("%w: %q", ErrUnknownArchitecture, token)
}

// HostTarget splits a into its host and target architectures.
func (a Architecture) HostTarget() (HostTarget, error) {
	switch a {
	case X86:
		return HostTarget{Host: HostX86, Target: TargetX86}, nil
	case X86_X64:
		return HostTarget{Host: HostX86, Target: TargetX64}, nil
	case X86_ARM:
		return HostTarget{Host: HostX86, Target: TargetARM}, nil
	case X86_ARM64:
		return HostTarget{Host: HostX86, Target: TargetARM64}, nil
	case X64:
		return HostTarget{Host: HostX64, Target: TargetX64}, nil
	case X64_X86:
		return HostTarget{Host: HostX64, Target: TargetX86}, nil
	case X64_ARM:
		return HostTarget{Host: HostX64, Target: TargetARM}, nil
	case X64_ARM64:
		return HostTarget{Host: HostX64, Target: TargetARM64}, nil
	}
	return HostTarget{}, fmt.Errorf("%w: %d", ErrUnknownArchitecture, int(a))
}

// FromHostTarget is the inverse of Architecture.HostTarget.
func FromHostTarget(ht HostTarget) (Architecture, error) {
	switch ht.Host {
	case HostX86:
		switch ht.Target {
		case TargetX86:
			return X86, nil
		case TargetX64:
			return X86_X64, nil
		case TargetARM:
			return X86_ARM, nil
		case TargetARM64:
			return X86_ARM64, nil
		}
	case HostX64:
		switch ht.Target {
		case TargetX86:
			return X64_X86, nil
		case TargetX64:
			return X64, nil
		case TargetARM:
			return X64_ARM, nil
		case TargetARM64:
			return X64_ARM64, nil
		}
	}
	return Unspecified, fmt.Errorf("%w: %s", ErrUnknownArchitecture, ht)
}
