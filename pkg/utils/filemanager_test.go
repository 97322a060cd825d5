package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileManager_CheckDirectory(t *testing.T) {
	dir := t.TempDir()

	fm := &FileManager{Dir: dir}
	assert.NoError(t, fm.CheckDirectory())

	fm.Dir = filepath.Join(dir, "missing")
	err := fm.CheckDirectory()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	fm.Dir = writeFile(t, dir, "plain.txt", "x")
	assert.ErrorIs(t, fm.CheckDirectory(), ErrNotDirectory)
}

func TestFileManager_DiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.tres", "")
	writeFile(t, dir, "a.tres", "")
	writeFile(t, dir, "c.TRES", "")
	writeFile(t, dir, "notes.txt", "")
	writeFile(t, dir, "a.tres.bak", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.tres"), 0o755))
	writeFile(t, filepath.Join(dir, "nested.tres"), "deep.tres", "")

	fm := &FileManager{Dir: dir, Extension: ".tres"}
	files, err := fm.DiscoverFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.tres"),
		filepath.Join(dir, "b.tres"),
	}, files)
}

func TestFileManager_DiscoverFilesMissingDir(t *testing.T) {
	fm := &FileManager{Dir: filepath.Join(t.TempDir(), "nope"), Extension: ".tres"}
	_, err := fm.DiscoverFiles()
	assert.Error(t, err)
}

func TestFileManager_ReadWriteText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "unit.tres", "faction = \"Técnicos\"\r\n")

	fm, err := NewFileManager(dir, ".tres", "UTF-8")
	require.NoError(t, err)

	text, err := fm.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "faction = \"Técnicos\"\r\n", text)

	require.NoError(t, fm.WriteText(path, "faction = 2\r\n"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "faction = 2\r\n", string(data))
}

func TestFileManager_WriteTextKeepsMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	dir := t.TempDir()
	path := writeFile(t, dir, "unit.tres", "x\n")
	require.NoError(t, os.Chmod(path, 0o600))

	fm := &FileManager{Dir: dir, Extension: ".tres", Encoding: unicode.UTF8}
	require.NoError(t, fm.WriteText(path, "y\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
}

func TestFileManager_ReadTextInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.tres")
	require.NoError(t, os.WriteFile(path, []byte{'a', 0xff, 0xfe, '\n'}, 0o644))

	fm := &FileManager{Dir: dir, Extension: ".tres", Encoding: unicode.UTF8}
	_, err := fm.ReadText(path)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestLookupEncoding(t *testing.T) {
	enc, err := LookupEncoding("")
	require.NoError(t, err)
	assert.Equal(t, unicode.UTF8, enc)

	enc, err = LookupEncoding("utf-8")
	require.NoError(t, err)
	assert.Equal(t, unicode.UTF8, enc)

	enc, err = LookupEncoding("windows-1252")
	require.NoError(t, err)
	assert.Equal(t, charmap.Windows1252, enc)

	_, err = LookupEncoding("klingon-8")
	assert.Error(t, err)
}

func TestEncodeDecodeWindows1252(t *testing.T) {
	text, err := Decode(charmap.Windows1252, []byte{'T', 0xe9, 'c'})
	require.NoError(t, err)
	assert.Equal(t, "Téc", text)

	data, err := Encode(charmap.Windows1252, "Téc")
	require.NoError(t, err)
	assert.Equal(t, []byte{'T', 0xe9, 'c'}, data)

	_, err = Encode(charmap.Windows1252, "日本")
	assert.Error(t, err)
}
