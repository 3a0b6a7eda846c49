// Package assets embeds the default level pack.
package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/cubejump/leveldata"
)

const LevelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS returns the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// LoadLevels loads every bundled level in play order.
func LoadLevels() ([]*leveldata.Level, error) {
	return leveldata.LoadAll(assetFS, LevelsDir)
}
