// =============================================================================
// Unit Resource Enum Migrator - File Manager Utility
// =============================================================================
//
// This module provides the file operations used by the migrator:
//   - Target directory checks
//   - Non-recursive file discovery by extension
//   - Whole-file text read/write in a fixed encoding
//
// WRITE STRATEGY:
//   - Files are read fully before anything is written back.
//   - Writes overwrite the file in place and keep its permission bits.
//   - There is no backup or rollback; a failed write leaves the file in
//     whatever state the OS left it.
//
// =============================================================================

package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
)

// ErrNotDirectory is returned when the target path exists but is a file.
var ErrNotDirectory = errors.New("not a directory")

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the migrator.
type FileManager struct {
	// Dir is the directory scanned for target files.
	Dir string

	// Extension is the literal, case-sensitive suffix a file name must end with.
	Extension string

	// Encoding is the text encoding used for both reads and writes.
	Encoding encoding.Encoding
}

// NewFileManager creates a FileManager for dir. The encoding is resolved by
// name through LookupEncoding.
func NewFileManager(dir, extension, encodingName string) (*FileManager, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &FileManager{
		Dir:       dir,
		Extension: extension,
		Encoding:  enc,
	}, nil
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// CheckDirectory verifies that Dir exists and is a directory.
//
// RETURNS:
//   - An error wrapping fs.ErrNotExist if the directory is missing.
//   - An error wrapping ErrNotDirectory if the path is not a directory.
func (fm *FileManager) CheckDirectory() error {
	info, err := os.Stat(fm.Dir)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", fm.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", fm.Dir, ErrNotDirectory)
	}
	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverFiles lists the regular files directly inside Dir whose name ends
// with Extension. Sub-directories are not descended into.
//
// RETURNS:
//   - File paths sorted by name.
//   - An error if the directory cannot be read.
func (fm *FileManager) DiscoverFiles() ([]string, error) {
	entries, err := os.ReadDir(fm.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), fm.Extension) {
			continue
		}
		files = append(files, filepath.Join(fm.Dir, entry.Name()))
	}

	// os.ReadDir already sorts by name; keep the guarantee explicit.
	sort.Strings(files)

	return files, nil
}

// =============================================================================
// FILE CONTENT
// =============================================================================

// ReadText reads the whole file and decodes it with the configured encoding.
func (fm *FileManager) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	text, err := Decode(fm.Encoding, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode file: %w", err)
	}

	return text, nil
}

// WriteText encodes text with the configured encoding and overwrites path.
// The existing permission bits are kept.
func (fm *FileManager) WriteText(path, text string) error {
	data, err := Encode(fm.Encoding, text)
	if err != nil {
		return fmt.Errorf("failed to encode file: %w", err)
	}

	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
