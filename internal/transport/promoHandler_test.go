package transport

import (
	"bytes"
	"image"
	"image/color"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/promocard/config"
	"github.com/ds124wfegd/promocard/internal/pkg/assets"
	"github.com/ds124wfegd/promocard/internal/pkg/processor"
	"github.com/ds124wfegd/promocard/internal/pkg/storage"
	"github.com/ds124wfegd/promocard/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logos"), 0755))
	require.NoError(t, imaging.Save(imaging.New(300, 60, color.NRGBA{R: 200, A: 255}), filepath.Join(dir, "logos", "pharmacy_logo.png")))
	require.NoError(t, imaging.Save(imaging.New(200, 50, color.NRGBA{G: 200, A: 255}), filepath.Join(dir, "logos", "apteka.png")))

	cfg := config.Default()
	assetStorage := storage.NewFileStorage(dir)
	uploads := storage.NewFileStorage(t.TempDir())
	proc := processor.NewImageProcessor(cfg, assets.NewLoader(assetStorage, uploads), assetStorage, uploads)

	return InitRoutes(NewPromoHandler(service.NewPromoService(proc, uploads)), 1<<20)
}

func multipartBody(t *testing.T, filename string, content []byte, price string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	if filename != "" {
		part, err := w.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	if price != "" {
		require.NoError(t, w.WriteField("price", price))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, imaging.Encode(buf, imaging.New(w, h, color.NRGBA{B: 120, A: 255}), imaging.PNG))
	return buf.Bytes()
}

// TestCreatePromo тестирует обработку загрузки товара
func TestCreatePromo(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name     string
		filename string
		content  []byte
		price    string
		status   int
	}{
		{"valid upload", "product.png", pngBytes(t, 200, 100), "249", http.StatusOK},
		{"missing price", "product.png", pngBytes(t, 200, 100), "", http.StatusBadRequest},
		{"missing file", "", nil, "249", http.StatusBadRequest},
		{"unsupported extension", "product.txt", []byte("text"), "249", http.StatusBadRequest},
		{"corrupt image", "product.png", []byte("not an image"), "249", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartBody(t, tt.filename, tt.content, tt.price)
			req := httptest.NewRequest(http.MethodPost, "/promo", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
				img, err := imaging.Decode(rec.Body)
				require.NoError(t, err)
				// 200 + 2*70 = 340
				assert.Equal(t, image.Rect(0, 0, 340, 340), img.Bounds())
			}
		})
	}
}

func TestHealth(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"promocard"}`, rec.Body.String())
}
