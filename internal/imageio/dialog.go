package imageio

import (
	"errors"
	"path/filepath"

	"github.com/sqweek/dialog"
)

// PickFile asks the user for an image with the native file dialog. A
// cancelled dialog returns an empty path and no error.
func PickFile() (string, error) {
	path, err := dialog.File().
		Title("Open image").
		Filter("Images", "png", "jpg", "jpeg", "gif", "bmp", "tif", "tiff", "webp").
		Filter("All files", "*").
		Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", nil
		}
		return "", err
	}
	return filepath.Clean(path), nil
}
