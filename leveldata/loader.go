package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// LoadLevel loads one level file, choosing the parser by extension.
func LoadLevel(fsys fs.FS, name string) (*Level, error) {
	switch path.Ext(name) {
	case ".tmx":
		return LoadTMX(fsys, name)
	case ".yaml", ".yml":
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return ParseTemplate(strings.TrimSuffix(path.Base(name), path.Ext(name)), data)
	default:
		return nil, fmt.Errorf("unsupported level file %s", name)
	}
}

// LoadAll discovers every level file in dir within fsys and loads them in
// file name order. Prefix files with a number to control play order.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read levels directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch path.Ext(entry.Name()) {
		case ".tmx", ".yaml", ".yml":
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no level files found in %s", ErrInvalidLevel, dir)
	}
	sort.Strings(names)

	levels := make([]*Level, 0, len(names))
	for _, name := range names {
		level, err := LoadLevel(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}
