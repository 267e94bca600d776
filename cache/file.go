package cache

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/wythoff/flag"
)

// FileStore keeps one text file per entry in Dir.
type FileStore struct {
	Dir  string
	opts []DecodeOption
}

// NewFileStore returns a store rooted at dir ("" means the working
// directory). opts are applied to every Load.
func NewFileStore(dir string, opts ...DecodeOption) *FileStore {
	return &FileStore{Dir: dir, opts: opts}
}

// Path returns the file path of entry name.
func (s *FileStore) Path(name string) string { return filepath.Join(s.Dir, name) }

// Load reads and decodes entry name. A missing file yields ErrNotFound.
func (s *FileStore) Load(name string, dim int) ([]flag.Flag, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Path(name))
	}
	if err != nil {
		return nil, fmt.Errorf("cache: read %s: %w", s.Path(name), err)
	}

	return Decode(bytes.NewReader(data), dim, s.opts...)
}

// Save creates entry name exclusively and writes flags to it. An existing
// file is left untouched and ErrExists is returned. A file whose write fails
// half way is removed.
func (s *FileStore) Save(name string, flags []flag.Flag) error {
	if err := validateName(name); err != nil {
		return err
	}
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o750); err != nil {
			return fmt.Errorf("cache: create directory %s: %w", s.Dir, err)
		}
	}
	path := s.Path(name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	if err != nil {
		return fmt.Errorf("cache: create %s: %w", path, err)
	}

	if err = Encode(f, flags); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("cache: close %s: %w", path, err)
	}

	return nil
}

// Close is a no-op; FileStore holds no open resources.
func (s *FileStore) Close() error { return nil }

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}
