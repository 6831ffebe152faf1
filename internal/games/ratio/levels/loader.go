// Package levels provides level loading functionality for Ratio.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/maruel/natural"

	"github.com/vovakirdan/ratio/internal/games/ratio/core"
	"github.com/vovakirdan/ratio/internal/games/ratio/levels/formats"
)

//go:embed builtin
var builtinFS embed.FS

// ErrNotFound is returned when no level has the requested ID.
var ErrNotFound = errors.New("levels: level not found")

// Loader handles loading levels from a file tree.
type Loader struct {
	Root   string // Display name of the tree, used in errors
	fsys   fs.FS
	logger *log.Logger
}

// NewLoader creates a loader for the level files under dir.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir, fsys: os.DirFS(dir), logger: log.New(io.Discard)}
}

// NewBuiltinLoader creates a loader for the level set compiled into the binary.
func NewBuiltinLoader() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return &Loader{Root: "builtin", fsys: sub, logger: log.New(io.Discard)}
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(name string, fsys fs.FS) *Loader {
	return &Loader{Root: name, fsys: fsys, logger: log.New(io.Discard)}
}

// WithLogger sets the logger used for debug output.
func (l *Loader) WithLogger(logger *log.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// LoadAll recursively scans and loads all level files.
// The first bad file aborts the scan. Levels are sorted by ID in natural
// order, so L2 comes before L10.
func (l *Loader) LoadAll() ([]*core.Level, error) {
	var levels []*core.Level
	seen := make(map[string]string)

	err := fs.WalkDir(l.fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(name))
		if !isSupportedExtension(ext) {
			l.logger.Debug("skipping non-level file", "file", name)
			return nil
		}

		lvl, err := l.LoadFile(name)
		if err != nil {
			return err
		}
		if prev, ok := seen[lvl.ID]; ok {
			return fmt.Errorf("levels: duplicate level id %q in %s and %s", lvl.ID, prev, name)
		}
		seen[lvl.ID] = name

		l.logger.Debug("loaded level", "id", lvl.ID, "file", name, "size", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height))
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: loading %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return natural.Less(levels[i].ID, levels[j].ID)
	})
	return levels, nil
}

// LoadFile loads a single level file relative to the loader root.
func (l *Loader) LoadFile(name string) (*core.Level, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", name, err)
	}
	lvl, err := build(data, name)
	if err != nil {
		return nil, err
	}
	lvl.FilePath = path.Join(l.Root, name)
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (*core.Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadPath loads one level file from the host file system.
func LoadPath(p string) (*core.Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", p, err)
	}
	lvl, err := build(data, filepath.Base(p))
	if err != nil {
		return nil, err
	}
	lvl.FilePath = p
	return lvl, nil
}

// build parses data by the extension of name and validates the level.
// A level without an ID takes the file name without extension.
func build(data []byte, name string) (*core.Level, error) {
	ext := strings.ToLower(path.Ext(name))
	parsed, err := formats.Parse(data, ext)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing %s: %w", name, err)
	}
	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}

	lvl, err := parsed.ToLevel()
	if err != nil {
		return nil, fmt.Errorf("levels: validating %s: %w", name, err)
	}
	return lvl, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
