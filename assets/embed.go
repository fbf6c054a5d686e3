// Package assets embeds the default dictionary shipped with the binary.
package assets

import (
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

// Words opens the embedded default word list.
func Words() (io.ReadCloser, error) {
	return FS.Open("words.txt")
}
