package transport

import (
	"github.com/ds124wfegd/promocard/internal/service"
)

type PromoHandler struct {
	service service.PromoService
}

func NewPromoHandler(service service.PromoService) *PromoHandler {
	return &PromoHandler{service: service}
}
