package vcvars

import (
	"os"
	"path/filepath"
	"strings"
)

// Locate returns the path of vcvarsall.bat below installPath
func Locate(installPath string) (string, error) {
	parts := append([]string{installPath}, scriptDir...)
	path := filepath.Join(append(parts, ScriptName)...)
	if _, err := os.Stat(path); err != nil {
		return "", &Error{Op: "locate", Path: path, Err: ErrScriptNotFound}
	}
	return path, nil
}

// BuildScript renders the batch file that dumps the environment, runs
// vcvarsall with args, then dumps it again after a Sentinel line.
func BuildScript(scriptPath string, args []string) string {
	call := `call "` + scriptPath + `"`
	if len(args) > 0 {
		call += " " + strings.Join(args, " ")
	}
	lines := []string{
		"@echo off",
		"set",
		"echo " + Sentinel,
		call,
		"set",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}
