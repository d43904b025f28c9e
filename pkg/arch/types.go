package arch

// Host is the architecture the compiler and linker run on.
type Host string

// Target is the architecture of the compiled binaries.
type Target string

const (
	HostX86 Host = "x86"
	HostX64 Host = "x64"
)

const (
	TargetX86   Target = "x86"
	TargetX64   Target = "x64"
	TargetARM   Target = "ARM"
	TargetARM64 Target = "ARM64"
)

// HostTarget is a (host, target) pair as understood by vcvarsall.
type HostTarget struct {
	Host   Host   // Compiler architecture
	Target Target // Output architecture
}

func (ht HostTarget) String() string {
	return string(ht.Host) + "->" + string(ht.Target)
}

// Architecture names one of the eight host/target pairings vcvarsall accepts.
// The zero value is Unspecified and does not name a pairing.
type Architecture int

const (
	Unspecified Architecture = iota
	X86                      // x86 host, x86 target
	X86_X64                  // x86 host, x64 target
	X86_ARM                  // x86 host, ARM target
	X86_ARM64                // x86 host, ARM64 target
	X64                      // x64 host, x64 target
	X64_X86                  // x64 host, x86 target
	X64_ARM                  // x64 host, ARM target
	X64_ARM64                // x64 host, ARM64 target
)
