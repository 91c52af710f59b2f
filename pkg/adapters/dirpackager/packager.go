// Package dirpackager delivers encoded results as individual files in a
// directory.
package dirpackager

import (
	"fmt"
	"path/filepath"

	"github.com/user/storeshot/pkg/ports"
)

// Packager writes each encoded result to its own file under a base
// directory.
type Packager struct {
	baseDir string
	fs      ports.FileSystem
	closed  bool
}

// New creates a new directory packager.
func New(baseDir string, fs ports.FileSystem) *Packager {
	return &Packager{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Add writes an encoded result under the suggested filename.
func (p *Packager) Add(filename string, data []byte) error {
	if p.closed {
		return fmt.Errorf("dirpackager: packager already closed")
	}
	return p.fs.WriteFile(filepath.Join(p.baseDir, filename), data)
}

// Close marks the packager finished. Files were already written on Add.
func (p *Packager) Close() error {
	p.closed = true
	return nil
}

// Ensure Packager implements ports.Packager
var _ ports.Packager = (*Packager)(nil)
