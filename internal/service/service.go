package service

import (
	"mime/multipart"

	"github.com/ds124wfegd/promocard/internal/entity"
	"github.com/ds124wfegd/promocard/internal/pkg/processor"
	"github.com/ds124wfegd/promocard/internal/pkg/storage"
)

type PromoService interface {
	// Render builds the card for a product on disk and saves it.
	Render(req entity.PromoRequest) (string, error)
	// RenderUpload builds the card for an uploaded product photo and returns
	// it PNG-encoded.
	RenderUpload(file *multipart.FileHeader, price string) ([]byte, error)
}

type promoService struct {
	processor processor.ImageProcessor
	uploads   storage.FileStorage
}

func NewPromoService(processor processor.ImageProcessor, uploads storage.FileStorage) PromoService {
	return &promoService{
		processor: processor,
		uploads:   uploads,
	}
}
