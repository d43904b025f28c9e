package platform

import (
	"os/exec"
)

// lookCommand resolves cmd in PATH
func lookCommand(cmd string) (string, bool) {
	path, err := exec.LookPath(cmd)
	if err != nil {
		return "", false
	}
	return path, true
}
