package vcvars

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempFiles hands out script paths that are unique per call
type TempFiles interface {
	Allocate() (string, error)
}

// UUIDTempFiles names scripts vcenv-<uuid>.bat inside Dir
type UUIDTempFiles struct {
	Dir string // Defaults to os.TempDir()
}

// Allocate returns a fresh path. Nothing is created on disk.
func (t UUIDTempFiles) Allocate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTempAllocation, err)
	}
	dir := t.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, TempPrefix+id.String()+".bat"), nil
}
