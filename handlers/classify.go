package handlers

import (
	"fmt"
	"net/http"

	"github.com/getsentry/raven-go"
	"github.com/gin-gonic/gin"

	"mlplayground/cache"
	"mlplayground/datastructures"
)

// SepsisClassifier is the slice of the loaded predictor the classify
// endpoints need.
type SepsisClassifier interface {
	Classify(features [8]float64) (datastructures.Result, error)
	Labels() []string
	ModelInfo() datastructures.ModelInfo
}

type ClassifyHandler struct {
	classifier SepsisClassifier
	cache      *cache.ResultCache // nil when no redis is configured
	maxBatch   int
}

func NewClassifyHandler(classifier SepsisClassifier, resultCache *cache.ResultCache, maxBatch int) *ClassifyHandler {
	return &ClassifyHandler{
		classifier: classifier,
		cache:      resultCache,
		maxBatch:   maxBatch,
	}
}

// Classify validates one eight-field patient record, runs the model and
// answers with exactly the predicted label and its probability.
func (h *ClassifyHandler) Classify(c *gin.Context) {
	setCORSHeaders(c)

	var req datastructures.SepsisFeatures
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	features := req.Vector()

	if h.cache != nil {
		if result, ok := h.cache.Get(cache.Key(features)); ok {
			c.JSON(http.StatusOK, result)
			return
		}
	}

	result, err := h.classifier.Classify(features)
	if err != nil {
		raven.CaptureError(err, map[string]string{"endpoint": "classify"})
		log.Error("[Classify] Couldn't run classification: ", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't process request - please try again later"})
		return
	}

	if h.cache != nil {
		h.cache.Set(cache.Key(features), result)
	}

	c.JSON(http.StatusOK, result)
}

// ClassifyBatch classifies a small array of patient records in request
// order. One bad record fails the whole batch before any inference runs.
func (h *ClassifyHandler) ClassifyBatch(c *gin.Context) {
	setCORSHeaders(c)

	var batch []datastructures.SepsisFeatures
	if err := c.ShouldBindJSON(&batch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(batch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty batch"})
		return
	}
	if len(batch) > h.maxBatch {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("batch size %d exceeds limit of %d", len(batch), h.maxBatch)})
		return
	}

	results := make([]datastructures.Result, 0, len(batch))
	for _, record := range batch {
		result, err := h.classifier.Classify(record.Vector())
		if err != nil {
			raven.CaptureError(err, map[string]string{"endpoint": "classify_batch"})
			log.Error("[Classify] Couldn't run batch classification: ", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't process request - please try again later"})
			return
		}
		results = append(results, result)
	}

	c.JSON(http.StatusOK, results)
}

// Info answers the root endpoint with a short description of the service.
func (h *ClassifyHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"info": "Sepsis Prediction API: predicts the sepsis status of ICU patients from routine vitals and blood work.",
	})
}

// Model exposes the loaded artifact's metadata and label set.
func (h *ClassifyHandler) Model(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"model_info": h.classifier.ModelInfo(),
		"labels":     h.classifier.Labels(),
	})
}
