package assets

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/promocard/internal/entity"
	"github.com/ds124wfegd/promocard/internal/pkg/storage"
)

// Loader turns a path into a decoded bitmap.
type Loader interface {
	// Load decodes a fixed auxiliary asset such as a logo.
	Load(path string) (image.Image, error)
	// LoadProduct decodes the product photo supplied by the caller.
	LoadProduct(path string) (image.Image, error)
}

type fileLoader struct {
	assets  storage.FileStorage
	product storage.FileStorage
}

// NewLoader reads logos from assets and product photos from product.
func NewLoader(assets, product storage.FileStorage) Loader {
	return &fileLoader{assets: assets, product: product}
}

func (l *fileLoader) Load(path string) (image.Image, error) {
	img, err := decode(l.assets, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrAssetMissing, err)
	}
	return img, nil
}

func (l *fileLoader) LoadProduct(path string) (image.Image, error) {
	img, err := decode(l.product, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrImageLoad, err)
	}
	return img, nil
}

func decode(s storage.FileStorage, path string) (image.Image, error) {
	file, err := s.Get(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path(path), err)
	}
	return img, nil
}
