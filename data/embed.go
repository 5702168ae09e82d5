// Package data provides the embedded game content: region maps, the world
// layout and the render theme.
package data

import (
	"embed"
	"io/fs"
)

// WorldFile is the default world description name.
const WorldFile = "world.yaml"

// ThemeFile is the render theme name.
const ThemeFile = "theme.json"

//go:embed maps/*.txt world.yaml theme.json
var dataFS embed.FS

// FS returns the embedded filesystem containing game data.
func FS() fs.FS {
	return dataFS
}
