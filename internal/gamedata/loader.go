// Package gamedata loads game content (theme, world layout) from a data filesystem.
package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/samdwyer/tilequest/data"
)

// Open returns the content filesystem. An empty dir selects the embedded data.
func Open(dir string) fs.FS {
	if dir == "" {
		return data.FS()
	}
	return os.DirFS(dir)
}

// Load reads and unmarshals a JSON file from fsys.
func Load[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}
