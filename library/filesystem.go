// Package library implements spec §3's Library/Entity model: a tree of
// on-disk .mo files and package directories read into AST-backed class
// instances, ready for instantiate()-on-demand (spec §2's data flow).
package library

import (
	"io/fs"
	"os"
)

// FileSystem abstracts the file access Load needs, grounded on the
// teacher's rootLoader pattern but narrowed to the two operations a
// package crawler actually performs: read a file, list a directory.
// Tests supply an in-memory FileSystem instead of touching disk.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]fs.DirEntry, error)
}

// OSFileSystem implements FileSystem over the real filesystem.
type OSFileSystem struct{}

func (OSFileSystem) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) { return os.ReadDir(path) }
