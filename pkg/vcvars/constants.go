package vcvars

const (
	// ScriptName is the vendor environment script
	ScriptName = "vcvarsall.bat"

	// Sentinel separates the two environment dumps. Real dump lines always
	// contain '=' and this one never does.
	Sentinel = "--------"

	// SpectreToken enables Spectre-mitigated libraries
	SpectreToken = "spectre"

	// ToolsetFlag selects the compiler toolset version
	ToolsetFlag = "-vcvars_ver="

	// TempPrefix names generated scripts in the temp directory
	TempPrefix = "vcenv-"
)

// scriptDir is where vcvarsall.bat lives below an installation root
var scriptDir = []string{"VC", "Auxiliary", "Build"}
