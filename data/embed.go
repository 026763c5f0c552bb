// Package data provides the embedded default map and actor roster.
package data

import "embed"

// DefaultMapFile is the embedded path of the built-in map.
const DefaultMapFile = "maps/default.txt"

//go:embed *.json maps/*.txt
var dataFS embed.FS

// DefaultMap returns the text of the built-in map.
func DefaultMap() (string, error) {
	return LoadText(DefaultMapFile)
}
