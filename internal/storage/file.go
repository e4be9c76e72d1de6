package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
)

// File stores each key as a JSON file inside a directory. Writes go through
// a temp file and rename so a crash mid-write never leaves a torn blob.
type File struct {
	dir string
}

// NewFile creates the directory if needed and returns a File store.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create storage dir")
	}
	return &File{dir: dir}, nil
}

// Get reads the blob for key, or ErrNotFound.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "read %s", key)
	}
	return data, nil
}

// Set writes the blob for key atomically.
func (f *File) Set(_ context.Context, key string, data []byte) error {
	path := f.path(key)
	tmp, err := os.CreateTemp(f.dir, "."+f.fileName(key)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "write %s", key)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "close %s", key)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "rename %s", key)
	}
	return nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, f.fileName(key))
}

// fileName maps a storage key to a safe file name. Keys are short fixed
// identifiers, so replacing separators is enough.
func (f *File) fileName(key string) string {
	r := strings.NewReplacer("/", "_", string(filepath.Separator), "_")
	return r.Replace(key) + ".json"
}
