package fs

import (
	iofs "io/fs"
	"path/filepath"
	"sync"
)

// MemoryFileSystem keeps files in a map. WriteFile fails unless the parent
// directory was created with MkdirAll, like the OS implementation.
type MemoryFileSystem struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool
}

func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string][]byte),
		dirs:  map[string]bool{".": true, "/": true},
	}
}

func (fs *MemoryFileSystem) ReadFile(path string) ([]byte, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, ok := fs.files[filepath.Clean(path)]
	if !ok {
		return nil, &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (fs *MemoryFileSystem) FileExists(path string) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	path = filepath.Clean(path)
	_, ok := fs.files[path]
	return ok || fs.dirs[path]
}

func (fs *MemoryFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	path = filepath.Clean(path)
	if !fs.dirs[filepath.Dir(path)] {
		return &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrNotExist}
	}
	fs.files[path] = append([]byte(nil), data...)
	return nil
}

func (fs *MemoryFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for dir := filepath.Clean(path); !fs.dirs[dir]; dir = filepath.Dir(dir) {
		fs.dirs[dir] = true
	}
	return nil
}

// Files lists the paths of written files.
func (fs *MemoryFileSystem) Files() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	paths := make([]string, 0, len(fs.files))
	for path := range fs.files {
		paths = append(paths, path)
	}
	return paths
}
