package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ds124wfegd/promocard/internal/entity"
	"github.com/ds124wfegd/promocard/internal/pkg/processor"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func (s *promoService) Render(req entity.PromoRequest) (string, error) {
	if req.ProductPath == "" || req.Price == "" {
		return "", entity.ErrInvalidArgs
	}
	return s.processor.Render(req)
}

func (s *promoService) RenderUpload(file *multipart.FileHeader, price string) ([]byte, error) {
	if strings.TrimSpace(price) == "" {
		return nil, fmt.Errorf("%w: price is required", entity.ErrInvalidArgs)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrImageLoad, err)
	}
	defer src.Close()

	// Сохраняем загруженный файл под временным именем
	path := filepath.Join("uploads", uuid.New().String()+strings.ToLower(filepath.Ext(file.Filename)))
	if err := s.uploads.Save(path, src); err != nil {
		return nil, err
	}
	defer func() {
		if err := s.uploads.Delete(path); err != nil {
			logrus.WithField("path", path).Warnf("cannot remove upload: %v", err)
		}
	}()

	img, err := s.processor.Process(entity.PromoRequest{ProductPath: path, Price: price})
	if err != nil {
		return nil, err
	}

	buf, err := processor.Encode(img, "card.png")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrWrite, err)
	}
	return buf.Bytes(), nil
}
