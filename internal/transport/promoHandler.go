package transport

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ds124wfegd/promocard/internal/entity"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *PromoHandler) CreatePromo(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	// Проверка типа файла
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !isValidImageType(ext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image type. Supported: jpg, jpeg, png, gif, bmp, tif, tiff"})
		return
	}

	price := c.PostForm("price")
	if strings.TrimSpace(price) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No price provided"})
		return
	}

	data, err := h.service.RenderUpload(file, price)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"file":  file.Filename,
			"price": price,
		}).Errorf("render failed: %v", err)

		switch {
		case errors.Is(err, entity.ErrInvalidArgs):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrImageLoad):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cannot decode image"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}

func isValidImageType(ext string) bool {
	validTypes := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".bmp":  true,
		".tif":  true,
		".tiff": true,
	}
	return validTypes[ext]
}
