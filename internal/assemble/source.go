package assemble

import (
	"io"
	"os"
	"path/filepath"
)

// SourceLocator opens the source of a module by name.
type SourceLocator interface {
	Open(name string) (io.ReadCloser, error)
}

// DirSource locates module X at Dir/X+Extension.
type DirSource struct {
	Dir       string
	Extension string
}

// NewDirSource returns a DirSource rooted at dir.
func NewDirSource(dir, extension string) *DirSource {
	return &DirSource{Dir: dir, Extension: extension}
}

// Path returns the file path used for module name.
func (s *DirSource) Path(name string) string {
	return filepath.Join(s.Dir, name+s.Extension)
}

// Open opens the module's source file for reading.
func (s *DirSource) Open(name string) (io.ReadCloser, error) {
	return os.Open(s.Path(name))
}
