package types

import (
	"io/fs"
)

// FS is the filesystem interface required for dotup operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
}
