package vcvars

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/vcenv/pkg/arch"
)

// fakeRunner records the scripts it was asked to run and replies with output
type fakeRunner struct {
	mu      sync.Mutex
	output  string
	err     error
	calls   int
	scripts []string
	bodies  []string
}

func (r *fakeRunner) Run(ctx context.Context, scriptPath string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.scripts = append(r.scripts, scriptPath)
	body, err := os.ReadFile(scriptPath)
	if err != nil {
		return "", err
	}
	r.bodies = append(r.bodies, string(body))
	return r.output, r.err
}

type failingTemps struct{}

func (failingTemps) Allocate() (string, error) {
	return "", errors.New("entropy exhausted")
}

const sampleOutput = "ALLUSERSPROFILE=C:\\ProgramData\r\n" +
	"Path=C:\\Windows\\system32;C:\\Windows\r\n" +
	"PROMPT=$P$G\r\n" +
	"--------\r\n" +
	"**********************************************************************\r\n" +
	"** Visual Studio 2022 Developer Command Prompt v17.8.3\r\n" +
	"**********************************************************************\r\n" +
	"[vcvarsall.bat] Environment initialized for: 'x64'\r\n" +
	"ALLUSERSPROFILE=C:\\ProgramData\r\n" +
	"INCLUDE=C:\\VS\\VC\\Tools\\MSVC\\14.38.33130\\include\r\n" +
	"Path=C:\\VS\\VC\\Tools\\MSVC\\14.38.33130\\bin\\HostX64\\x64;C:\\Windows\\system32;C:\\Windows\r\n" +
	"PROMPT=$P$G\r\n" +
	"VCToolsVersion=14.38.33130\r\n"

func TestEnvironment(t *testing.T) {
	root, script := fakeInstall(t)
	tempDir := t.TempDir()
	runner := &fakeRunner{output: sampleOutput}
	m := NewManager(&Config{Runner: runner, TempDir: tempDir})

	delta, err := m.Environment(context.Background(), root, &Options{Arch: arch.X64, VCVersion: "14.38"})
	require.NoError(t, err)

	assert.Equal(t, []string{"INCLUDE", "Path", "VCToolsVersion"}, delta.Keys())
	assert.Equal(t, map[string]string{
		"INCLUDE":        `C:\VS\VC\Tools\MSVC\14.38.33130\include`,
		"Path":           `C:\VS\VC\Tools\MSVC\14.38.33130\bin\HostX64\x64;%Path%`,
		"VCToolsVersion": "14.38.33130",
	}, delta.Map())

	require.Equal(t, 1, runner.calls)
	assert.Contains(t, runner.bodies[0], `call "`+script+`" amd64 -vcvars_ver=14.38`)
	assert.Equal(t, tempDir, filepath.Dir(runner.scripts[0]))

	_, statErr := os.Stat(runner.scripts[0])
	assert.True(t, os.IsNotExist(statErr), "generated script should be removed")
}

func TestEnvironmentDefaultOptions(t *testing.T) {
	root, _ := fakeInstall(t)
	runner := &fakeRunner{output: "A=1\n--------\nA=1\n"}
	m := NewManager(&Config{Runner: runner, TempDir: t.TempDir()})

	delta, err := m.Environment(context.Background(), root, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, delta.Len())

	want, err := Args(nil)
	require.NoError(t, err)
	assert.Contains(t, runner.bodies[0], `vcvarsall.bat" `+strings.Join(want, " ")+"\r\n")
}

func TestEnvironmentScriptNotFound(t *testing.T) {
	runner := &fakeRunner{output: sampleOutput}
	m := NewManager(&Config{Runner: runner, TempDir: t.TempDir()})

	delta, err := m.Environment(context.Background(), t.TempDir(), nil)
	assert.Nil(t, delta)
	assert.ErrorIs(t, err, ErrScriptNotFound)
	assert.Equal(t, 0, runner.calls)
}

func TestEnvironmentUnknownArchitecture(t *testing.T) {
	root, _ := fakeInstall(t)
	runner := &fakeRunner{output: sampleOutput}
	m := NewManager(&Config{Runner: runner, TempDir: t.TempDir()})

	_, err := m.Environment(context.Background(), root, &Options{Arch: arch.Architecture(-1)})
	assert.ErrorIs(t, err, arch.ErrUnknownArchitecture)
	assert.Equal(t, 0, runner.calls)
}

func TestEnvironmentTempAllocationFailure(t *testing.T) {
	root, _ := fakeInstall(t)
	runner := &fakeRunner{output: sampleOutput}
	m := NewManager(&Config{Runner: runner, TempFiles: failingTemps{}})

	_, err := m.Environment(context.Background(), root, nil)
	require.ErrorIs(t, err, ErrTempAllocation)
	assert.Contains(t, err.Error(), "entropy exhausted")
	assert.Equal(t, 0, runner.calls)
}

func TestEnvironmentExecutionFailure(t *testing.T) {
	root, _ := fakeInstall(t)
	tempDir := t.TempDir()
	runner := &fakeRunner{output: sampleOutput, err: errors.New("exit status 1")}
	m := NewManager(&Config{Runner: runner, TempDir: tempDir})

	delta, err := m.Environment(context.Background(), root, nil)
	assert.Nil(t, delta)
	require.ErrorIs(t, err, ErrExecutionFailed)
	assert.Contains(t, err.Error(), "exit status 1")

	var opErr *Error
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "run", opErr.Op)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "generated script should be removed after a failed run")
}

func TestEnvironmentExecutionFailureKeepsDiagnostics(t *testing.T) {
	root, _ := fakeInstall(t)
	output := "line 1\r\nline 2\r\nline 3\r\nline 4\r\nline 5\r\n[ERROR:vcvarsall.bat] Invalid argument found : bogus\r\n\r\n"
	runner := &fakeRunner{output: output, err: errors.New("exit status 1")}
	m := NewManager(&Config{Runner: runner, TempDir: t.TempDir()})

	_, err := m.Environment(context.Background(), root, nil)
	require.ErrorIs(t, err, ErrExecutionFailed)
	assert.Contains(t, err.Error(), "exit status 1")
	assert.Contains(t, err.Error(), "[ERROR:vcvarsall.bat] Invalid argument found : bogus")
	assert.Contains(t, err.Error(), "line 2")
	assert.NotContains(t, err.Error(), "line 1")
}

func TestEnvironmentConcurrentCalls(t *testing.T) {
	root, _ := fakeInstall(t)
	runner := &fakeRunner{output: sampleOutput}
	m := NewManager(&Config{Runner: runner, TempDir: t.TempDir()})

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Environment(context.Background(), root, nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	seen := make(map[string]bool)
	for _, s := range runner.scripts {
		assert.False(t, seen[s], "script path reused: %s", s)
		seen[s] = true
	}
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
	dir := t.TempDir()

	ok := filepath.Join(dir, "ok.sh")
	require.NoError(t, os.WriteFile(ok, []byte("echo A=1\necho oops >&2\n"), 0644))
	out, err := NewExecRunner([]string{"sh"}, nil).Run(context.Background(), ok)
	require.NoError(t, err)
	assert.Contains(t, out, "A=1\n")
	assert.Contains(t, out, "oops\n")

	bad := filepath.Join(dir, "bad.sh")
	require.NoError(t, os.WriteFile(bad, []byte("echo '[ERROR:vcvarsall.bat] Invalid argument found : bogus' >&2\nexit 3\n"), 0644))
	_, err = NewExecRunner([]string{"sh"}, nil).Run(context.Background(), bad)
	require.ErrorIs(t, err, ErrExecutionFailed)
	assert.Contains(t, err.Error(), "exit status 3")
	assert.Contains(t, err.Error(), "[ERROR:vcvarsall.bat] Invalid argument found : bogus")

	_, err = NewExecRunner([]string{filepath.Join(dir, "no-such-shell")}, nil).Run(context.Background(), ok)
	assert.ErrorIs(t, err, ErrExecutionFailed)
}
