package scaffold

import (
	"os"

	"github.com/conn-castle/forge/internal/fsutil"
)

// System abstracts the destination-side filesystem operations needed by the
// copier. Template sources are read through fs.FS instead, so the same copier
// serves the embedded catalog and on-disk catalogs.
type System interface {
	MkdirAll(path string, perm os.FileMode) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFileAtomic writes data to a file atomically by writing a temp file and renaming.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}
