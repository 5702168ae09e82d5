package gamedata

import (
	"fmt"
	"io/fs"

	"github.com/samdwyer/tilequest/internal/worldmap"
)

// LoadWorld decodes the named world description from fsys. Each call returns
// a fresh Map, so independent games never share a current region.
func LoadWorld(fsys fs.FS, name string) (*worldmap.Map, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	defer f.Close()

	w, err := worldmap.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return w, nil
}
