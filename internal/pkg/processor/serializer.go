package processor

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/promocard/internal/entity"
	"github.com/ds124wfegd/promocard/internal/pkg/storage"
)

// Encode writes img in the format implied by the extension of path. Paths
// without a known image extension are encoded as PNG.
func Encode(img image.Image, path string) (*bytes.Buffer, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		format = imaging.PNG
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, format); err != nil {
		return nil, err
	}
	return buf, nil
}

func Save(s storage.FileStorage, img image.Image, path string) error {
	buf, err := Encode(img, path)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", entity.ErrWrite, path, err)
	}

	if err := s.Save(path, buf); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrWrite, err)
	}
	return nil
}
