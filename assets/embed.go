// Package assets embeds the built-in glyph template of the bitmap program.
package assets

import (
	"embed"
	"strings"
)

//go:embed bitmap.txt
var FS embed.FS

// BitmapTemplate returns the built-in template without its trailing newline.
func BitmapTemplate() (string, error) {
	b, err := FS.ReadFile("bitmap.txt")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
