// Package zippackager delivers encoded results bundled in a ZIP archive.
package zippackager

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/storeshot/pkg/ports"
)

// Packager streams encoded results into a single ZIP archive on disk.
type Packager struct {
	file   *os.File
	writer *zip.Writer
}

// New creates the archive file and a packager writing into it.
// Parent directories are created as needed.
func New(path string) (*Packager, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("zippackager: create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("zippackager: create archive: %w", err)
	}

	return &Packager{
		file:   file,
		writer: zip.NewWriter(file),
	}, nil
}

// Add stores an encoded result as an archive entry.
func (p *Packager) Add(filename string, data []byte) error {
	if p.writer == nil {
		return fmt.Errorf("zippackager: packager already closed")
	}
	entry, err := p.writer.Create(filename)
	if err != nil {
		return fmt.Errorf("zippackager: create entry %s: %w", filename, err)
	}
	if _, err := entry.Write(data); err != nil {
		return fmt.Errorf("zippackager: write entry %s: %w", filename, err)
	}
	return nil
}

// Close finalizes the archive and releases the file handle.
func (p *Packager) Close() error {
	if p.writer == nil {
		return nil
	}
	writer := p.writer
	p.writer = nil

	if err := writer.Close(); err != nil {
		p.file.Close()
		return fmt.Errorf("zippackager: finalize archive: %w", err)
	}
	if err := p.file.Close(); err != nil {
		return fmt.Errorf("zippackager: close archive file: %w", err)
	}
	return nil
}

// Ensure Packager implements ports.Packager
var _ ports.Packager = (*Packager)(nil)
