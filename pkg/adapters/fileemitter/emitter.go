// Package fileemitter provides an emitter that saves banners to a directory.
package fileemitter

import (
	"path/filepath"

	"github.com/user/bannerforge/pkg/ports"
)

// Emitter writes emitted banners into a base directory.
type Emitter struct {
	dir string
	fs  ports.FileSystem
}

// New creates a new Emitter writing into dir.
func New(dir string, fs ports.FileSystem) *Emitter {
	return &Emitter{dir: dir, fs: fs}
}

// Emit writes the banner bytes under the generated filename.
func (e *Emitter) Emit(data []byte, filename string) error {
	return e.fs.WriteFile(filepath.Join(e.dir, filename), data)
}

// Ensure Emitter implements ports.Emitter
var _ ports.Emitter = (*Emitter)(nil)
