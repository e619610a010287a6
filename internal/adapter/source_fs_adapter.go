// Package adapter contains infrastructure adapters for the clonex CLI.
package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	m "clonex.dev/pkg/clonex/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when reading reports and the source files they point at.
type SourceFSAdapter interface {
	// ReadText loads a text file. A UTF-8 or UTF-16 byte order mark is honored
	// and invalid UTF-8 is replaced with U+FFFD rather than failing.
	ReadText(path m.Path) (string, error)

	// IsFile reports whether path names an existing regular file.
	IsFile(path m.Path) bool

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter implements SourceFSAdapter on the host filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadText reads the whole file through a BOM-aware UTF-8 decoder.
func (a *LocalSourceFSAdapter) ReadText(path m.Path) (string, error) {
	// #nosec G304 - reading user supplied report and source paths is the point
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}

	return string(data), nil
}

// IsFile reports whether path exists and is not a directory.
func (a *LocalSourceFSAdapter) IsFile(path m.Path) bool {
	info, err := os.Stat(string(path))
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
