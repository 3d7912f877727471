package routes

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"mlplayground/handlers"
	"mlplayground/middleware"
)

// SetupSepsisRoutes wires the prediction service's endpoints.
func SetupSepsisRoutes(h *handlers.ClassifyHandler) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	r.GET("/", h.Info)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "sepsis-api",
		})
	})
	r.GET("/model", h.Model)

	r.OPTIONS("/classify", handlers.Preflight)
	r.POST("/classify", h.Classify)

	r.OPTIONS("/classify/batch", handlers.Preflight)
	r.POST("/classify/batch", h.ClassifyBatch)

	return r
}

// SetupSentimentRoutes wires the sentiment demo: the interactive page plus
// the JSON endpoint it calls.
func SetupSentimentRoutes(h *handlers.SentimentHandler, webDir string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(webDir, "index.html"))
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "sentiment-demo",
		})
	})
	r.GET("/model", h.Model)

	r.OPTIONS("/analyze", handlers.Preflight)
	r.POST("/analyze", h.Analyze)

	return r
}
