// Package storage provides the flat-file persistence for a prize pool.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/pz/internal/model"
)

// Storage provides access to the prize file and config of one directory.
type Storage struct {
	root   string // directory holding the prize file and .pzconfig.yaml
	config *Config
}

// Open returns a Storage for the given directory and loads its config.
// Returns error if dir is not an existing directory or the config is invalid.
func Open(dir string) (*Storage, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory %s not found", dir)
		}
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	s := &Storage{root: abs}
	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}
	s.config = cfg
	return s, nil
}

// Root returns the directory the storage is rooted at.
func (s *Storage) Root() string {
	return s.root
}

// Config returns the config loaded by Open.
func (s *Storage) Config() *Config {
	return s.config
}

// PrizePath returns the path to the prize file.
func (s *Storage) PrizePath() string {
	name := DefaultPrizeFile
	if s.config != nil && s.config.PrizeFile != "" {
		name = s.config.PrizeFile
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.root, name)
}

// ReadPrizes reads the prize file.
// A missing file is not an error and yields no entries.
func (s *Storage) ReadPrizes() ([]string, error) {
	path := s.PrizePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read prize file %s: %w", path, err)
	}
	return model.DecodeLines(data), nil
}

// WritePrizes replaces the prize file with entries.
// The content goes to a temp file in the same directory which is then renamed
// over the target, so readers never see a partial file. The directory must
// already exist.
func (s *Storage) WritePrizes(entries []string) error {
	path := s.PrizePath()
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write prize file %s: %w", path, err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(model.EncodeLines(entries)); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write prize file %s: %w", path, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write prize file %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write prize file %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace prize file %s: %w", path, err)
	}
	return nil
}
