package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"sync"

	textclip "github.com/atotto/clipboard"
	"golang.design/x/clipboard"
)

var (
	clipInitOnce sync.Once
	clipInitErr  error
)

// EncodePNG encodes img as the bytes placed on the clipboard.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.New("imageio: no image to encode")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// CopyImage places img on the system clipboard as PNG.
func CopyImage(img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	clipInitOnce.Do(func() { clipInitErr = clipboard.Init() })
	if clipInitErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", clipInitErr)
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}

// CopyPath places the image path on the clipboard as text.
func CopyPath(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := textclip.WriteAll(path); err != nil {
		return fmt.Errorf("copy path: %w", err)
	}
	return nil
}
