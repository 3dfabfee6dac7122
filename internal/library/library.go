// Package library stores named board positions in a YAML file.
//
// A library file maps position names to FEN strings:
//
//	positions:
//	  endgame-study: 7/7/7/7/3Z3/7/2z4/7/7
//
// The names "startpos" and "empty" are built in and always resolve, even
// without a library file. Use [ResolvePath] to discover the library file
// and [New] to open it.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"barragoon/internal/game"
)

// DefaultFileName is the library file name used during auto-discovery.
const DefaultFileName = "positions.yaml"

// builtins are always available and cannot be overwritten or deleted.
var builtins = map[string]string{
	"startpos": game.InitialFEN,
	"empty":    game.EmptyFEN,
}

// ResolvePath discovers the library file location.
//
// Resolution order:
//  1. BARRAGOON_LIBRARY_PATH environment variable (used as-is if set)
//  2. Explicit libraryPath parameter (if non-empty)
//  3. positions.yaml in the user config directory (barragoon subdirectory)
//  4. ./positions.yaml
func ResolvePath(libraryPath string) string {
	if envPath := os.Getenv("BARRAGOON_LIBRARY_PATH"); envPath != "" {
		return envPath
	}

	if libraryPath != "" {
		return libraryPath
	}

	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "barragoon", DefaultFileName)
	}

	return DefaultFileName
}

// file is the on-disk YAML layout.
type file struct {
	Positions map[string]string `yaml:"positions"`
}

// Library reads and writes named positions at a fixed file path.
//
// A missing file behaves as an empty library; the built-in positions still
// resolve. The file is created on the first [Library.Save].
type Library struct {
	path string
}

// New returns a Library backed by the given file path.
func New(path string) *Library {
	return &Library{path: path}
}

// Path returns the library's file path.
func (l *Library) Path() string {
	return l.path
}

// Get returns the FEN stored under name. Built-in names take priority over
// file entries.
func (l *Library) Get(name string) (string, error) {
	if fen, ok := builtins[name]; ok {
		return fen, nil
	}

	f, err := l.read()
	if err != nil {
		return "", err
	}

	fen, ok := f.Positions[name]
	if !ok {
		return "", fmt.Errorf("position not found: %s", name)
	}
	return fen, nil
}

// List returns all position names, built-ins included, sorted.
func (l *Library) List() ([]string, error) {
	f, err := l.read()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(f.Positions)+len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	for name := range f.Positions {
		if _, ok := builtins[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names, nil
}

// Save stores fen under name, creating the library file if needed.
// The FEN is validated before writing. Built-in names cannot be replaced.
func (l *Library) Save(name, fen string) error {
	if _, ok := builtins[name]; ok {
		return fmt.Errorf("cannot overwrite built-in position: %s", name)
	}
	if _, err := game.FromFEN(fen); err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}

	f, err := l.read()
	if err != nil {
		return err
	}
	if f.Positions == nil {
		f.Positions = make(map[string]string)
	}
	f.Positions[name] = fen

	return l.write(f)
}

// Delete removes the position stored under name.
func (l *Library) Delete(name string) error {
	if _, ok := builtins[name]; ok {
		return fmt.Errorf("cannot delete built-in position: %s", name)
	}

	f, err := l.read()
	if err != nil {
		return err
	}
	if _, ok := f.Positions[name]; !ok {
		return fmt.Errorf("position not found: %s", name)
	}
	delete(f.Positions, name)

	return l.write(f)
}

func (l *Library) read() (*file, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return &file{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read position library: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse position library: %w", err)
	}

	return &f, nil
}

// write replaces the library file atomically (write to temp, then rename).
func (l *Library) write(f *file) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal position library: %w", err)
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to write position library: %w", err)
		}
	}

	tmpPath := l.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write position library: %w", err)
	}

	if err := os.Rename(tmpPath, l.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write position library: %w", err)
	}

	return nil
}
