package filesystem

import (
	"io/fs"
)

// FS is the subset of filesystem operations fontweak needs
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	Rename(oldpath, newpath string) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

// atomicWriter is implemented by filesystems that can write durably on their own
type atomicWriter interface {
	WriteFileAtomic(name string, data []byte, perm fs.FileMode) error
}

// Exists reports whether name can be stat'ed
func Exists(fsys FS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}

// WriteFileAtomic writes data next to name and renames it into place, so a
// reader sees either the old content or the new one. The temporary file is
// removed on failure and name is left untouched.
func WriteFileAtomic(fsys FS, name string, data []byte, perm fs.FileMode) error {
	if aw, ok := fsys.(atomicWriter); ok {
		return aw.WriteFileAtomic(name, data, perm)
	}

	tmp := name + ".tmp"
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	if err := fsys.Rename(tmp, name); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	return nil
}
