package transport

import (
	"net/http"

	"github.com/ds124wfegd/promocard/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

func InitRoutes(promoHandler *PromoHandler, maxUploadBytes int64) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())
	router.MaxMultipartMemory = maxUploadBytes

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
		c.Next()
	})

	router.POST("/promo", promoHandler.CreatePromo)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "promocard",
		})
	})
	return router
}
