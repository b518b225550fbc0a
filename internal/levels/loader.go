// Package levels loads external level packs from YAML files, so custom
// boards can be played without rebuilding.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/arkanoid-tui/internal/arkanoid"
)

// levelFile is the on-disk schema of a single level.
type levelFile struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ParseYAML parses one level definition. The rows use the same glyphs
// as the built-in layouts ('#', '1'-'9', 'H', '.').
func ParseYAML(data []byte) (*arkanoid.Layout, error) {
	var lf levelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	if lf.ID == "" {
		return nil, fmt.Errorf("level is missing an id")
	}
	if len(lf.Rows) == 0 {
		return nil, fmt.Errorf("level %s has no rows", lf.ID)
	}

	name := lf.Name
	if name == "" {
		name = lf.ID
	}
	layout := arkanoid.ParseLayout(lf.ID, name, lf.Rows)
	if layout.CountBricks() == 0 {
		return nil, fmt.Errorf("level %s has no bricks", lf.ID)
	}
	return layout, nil
}

// LoadFile loads a single level from a YAML file.
func LoadFile(path string) (*arkanoid.Layout, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path comes from the CLI flag
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", path, err)
	}
	layout, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// LoadDir loads every .yaml/.yml file in a directory as a level pack,
// ordered by filename so pack authors control level order.
func LoadDir(dir string) ([]*arkanoid.Layout, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no level files in %s", dir)
	}

	layouts := make([]*arkanoid.Layout, 0, len(files))
	seen := make(map[string]bool)
	for _, name := range files {
		layout, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if seen[layout.ID] {
			return nil, fmt.Errorf("duplicate level id %q in %s", layout.ID, dir)
		}
		seen[layout.ID] = true
		layouts = append(layouts, layout)
	}
	return layouts, nil
}
