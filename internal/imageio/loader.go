// Package imageio loads the previewed image from disk and moves it to and
// from the outside world: file watching, clipboard and file picking.
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrNoPath = errors.New("imageio: no image path")

// Load decodes the image at path. The format is detected from the content.
func Load(path string) (image.Image, string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, "", ErrNoPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, format, nil
}
