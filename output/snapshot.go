package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// Snapshot writes f to path as PNG, or as JPEG when path ends in .jpg or
// .jpeg.
func Snapshot(path string, f Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	enc := imgio.PNGEncoder()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		enc = imgio.JPEGEncoder(95)
	}
	if err := imgio.Save(path, f.Image(), enc); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}
