package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterp() (*Interp, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	in := New()
	in.Stdin = &bytes.Buffer{}
	in.Stdout = stdout
	in.Stderr = stderr
	return in, stdout, stderr
}

// chdirTemp moves the process into a temp directory and restores the
// original working directory when the test ends.
func chdirTemp(t *testing.T) string {
	t.Helper()

	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})

	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))

	// TempDir may be behind a symlink (e.g. /tmp on darwin).
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return resolved
}

func TestBuiltins_table(t *testing.T) {
	names := []string{}
	for _, b := range Builtins() {
		names = append(names, b.Name)
	}

	assert.Equal(t, []string{"cd", "exit"}, names)
	assert.True(t, IsBuiltin("cd"))
	assert.True(t, IsBuiltin("exit"))
	assert.False(t, IsBuiltin("cat"))
	assert.False(t, IsBuiltin("CD"), "matching is case-sensitive")
}

func TestCd_argument(t *testing.T) {
	base := chdirTemp(t)
	require.NoError(t, os.Mkdir(filepath.Join(base, "sub"), 0700))

	in, _, stderr := newTestInterp()
	assert.True(t, in.RunLine("cd sub"))
	assert.Empty(t, stderr.String())

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "sub"), wd)
}

func TestCd_badPath(t *testing.T) {
	base := chdirTemp(t)

	in, _, stderr := newTestInterp()
	assert.True(t, in.RunLine("cd /nonexistent-path"), "cd failure is never fatal")
	assert.Contains(t, stderr.String(), "duosh: cd:")

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, base, wd, "working directory unchanged after failed cd")
}

func TestCd_home(t *testing.T) {
	chdirTemp(t)

	home := t.TempDir()
	t.Setenv("HOME", home)

	in, _, stderr := newTestInterp()
	assert.True(t, in.RunLine("cd"))
	assert.Empty(t, stderr.String())

	wd, err := os.Getwd()
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(home)
	require.NoError(t, err)
	assert.Equal(t, resolved, wd)
}

func TestCd_noHome(t *testing.T) {
	base := chdirTemp(t)

	t.Setenv("HOME", "")

	in, _, stderr := newTestInterp()
	assert.True(t, in.RunLine("cd"))
	assert.Contains(t, stderr.String(), "duosh: cd:")

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, base, wd, "no action when the home directory is unavailable")
}

func TestCd_tooManyArguments(t *testing.T) {
	base := chdirTemp(t)

	in, _, stderr := newTestInterp()
	assert.True(t, in.RunLine("cd a b"))
	assert.Contains(t, stderr.String(), "too many arguments")

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, base, wd)
}

func TestExit(t *testing.T) {
	in, _, _ := newTestInterp()

	assert.False(t, in.RunLine("exit"))
	assert.False(t, in.RunLine("exit 42"), "trailing arguments are ignored")
	assert.False(t, in.RunLine("exit now please"))
}
