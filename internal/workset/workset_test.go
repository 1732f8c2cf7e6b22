package workset

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/hylite/pkg/types"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("// hylite x\n"), 0644))
	}
}

func writeSetFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".hylite")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileSet_IncludeExclude(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir,
		"src/main.c",
		"src/util/strings.c",
		"src/gen/parser.c",
		"docs/notes.txt",
		"docs/readme.md",
	)
	setFile := writeSetFile(t, dir, `
include:
  - "src/**/*.c"
  - "docs/*.txt"
exclude:
  - "src/gen/**"
`)

	ws, err := Load(setFile)
	require.NoError(t, err)
	assert.Equal(t, dir, ws.BaseDir())

	files, err := ws.Files()
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "docs", "notes.txt"),
		filepath.Join(dir, "src", "main.c"),
		filepath.Join(dir, "src", "util", "strings.c"),
	}, files)
}

func TestFileSet_OverlappingIncludesListedOnce(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.c", "b.c")
	setFile := writeSetFile(t, dir, "include: [\"*.c\", \"a.*\"]\n")

	ws, err := Load(setFile)
	require.NoError(t, err)

	files, err := ws.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.c"), filepath.Join(dir, "b.c")}, files)
}

func TestFileSet_Covert(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "main.c", "main.c~", ".secret.c", ".cache/x.c")
	setFile := writeSetFile(t, dir, "include:\n  - \"**/*\"\nexclude:\n  - \".hylite\"\n")

	ws, err := Load(setFile)
	require.NoError(t, err)

	files, err := ws.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "main.c")}, files)

	ws.SetCovert(true)
	files, err = ws.Files()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, ".cache", "x.c"),
		filepath.Join(dir, ".secret.c"),
		filepath.Join(dir, "main.c"),
		filepath.Join(dir, "main.c~"),
	}, files)
}

func TestFileSet_AbsolutePatterns(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	touch(t, dir, "local.c")
	touch(t, other, "a.c", "b.c", "skip.c", "a.c~")

	setFile := writeSetFile(t, dir, "include:\n"+
		"  - \"*.c\"\n"+
		"  - \""+filepath.ToSlash(filepath.Join(other, "*"))+"\"\n"+
		"exclude:\n"+
		"  - \""+filepath.ToSlash(filepath.Join(other, "skip.c"))+"\"\n")

	ws, err := Load(setFile)
	require.NoError(t, err)

	files, err := ws.Files()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "local.c"),
		filepath.Join(other, "a.c"),
		filepath.Join(other, "b.c"),
	}, files)
}

func TestFileSet_AbsolutePatternInsideBaseDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "src/a.c", "src/gen/b.c")

	setFile := writeSetFile(t, dir, "include:\n"+
		"  - \""+filepath.ToSlash(filepath.Join(dir, "src"))+"/**/*.c\"\n"+
		"exclude:\n"+
		"  - \"src/gen/**\"\n")

	ws, err := Load(setFile)
	require.NoError(t, err)

	files, err := ws.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "src", "a.c")}, files)
}

func TestFileSet_DirectoriesNotListed(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "pkg/a.c")
	setFile := writeSetFile(t, dir, "include:\n  - \"*\"\n  - \"pkg/*\"\n")

	ws, err := Load(setFile)
	require.NoError(t, err)

	files, err := ws.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "pkg", "a.c")}, files)
}

func TestFileSet_EmptyFile(t *testing.T) {
	ws, err := Parse([]byte(""), t.TempDir())
	require.NoError(t, err)

	files, err := ws.Files()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent"))
		require.Error(t, err)

		var fe *types.FileError
		assert.True(t, errors.As(err, &fe))
		assert.ErrorIs(t, err, types.ErrUnreadableFile)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Parse([]byte("include: [unclosed"), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse working set")
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := Parse([]byte("include:\n  - \"src/[\"\n"), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "src/[")
	})
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvSetFile, "")
	assert.Equal(t, DefaultSetFile, DefaultPath())

	t.Setenv(EnvSetFile, "/etc/project.hylite")
	assert.Equal(t, "/etc/project.hylite", DefaultPath())
}

func TestManualSet(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.c", "a.c")
	a := filepath.Join(dir, "a.c")
	b := filepath.Join(dir, "b.c")
	missing := filepath.Join(dir, "missing.c")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ws := NewManual(logger, b, missing, a)
	ws.SetCovert(true)

	files, err := ws.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{b, a}, files, "order is kept, unreadable files dropped")
}

func TestWorkingSetInterface(t *testing.T) {
	var _ WorkingSet = (*FileSet)(nil)
	var _ WorkingSet = (*ManualSet)(nil)
}
