package handlers

import (
	"net/http"

	"github.com/getsentry/raven-go"
	"github.com/gin-gonic/gin"

	"mlplayground/datastructures"
)

// SentimentAnalyzer is the slice of the loaded predictor the analyze
// endpoint needs.
type SentimentAnalyzer interface {
	Analyze(text string) (datastructures.Result, error)
	Labels() []string
	ModelInfo() datastructures.ModelInfo
}

type SentimentHandler struct {
	analyzer SentimentAnalyzer
}

func NewSentimentHandler(analyzer SentimentAnalyzer) *SentimentHandler {
	return &SentimentHandler{analyzer: analyzer}
}

// Analyze scores the submitted text. Empty or missing text is rejected
// before the model is consulted.
func (h *SentimentHandler) Analyze(c *gin.Context) {
	setCORSHeaders(c)

	var req datastructures.SentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.analyzer.Analyze(req.Text)
	if err != nil {
		raven.CaptureError(err, map[string]string{"endpoint": "analyze"})
		log.Error("[Analyze] Couldn't run sentiment analysis: ", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't process request - please try again later"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Model exposes the loaded artifact's metadata and label set.
func (h *SentimentHandler) Model(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"model_info": h.analyzer.ModelInfo(),
		"labels":     h.analyzer.Labels(),
	})
}
