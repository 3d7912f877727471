package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func setCORSHeaders(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Requested-With, Cache-Control")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
}

// Preflight answers CORS preflight requests on the POST endpoints.
func Preflight(c *gin.Context) {
	setCORSHeaders(c)
	c.JSON(http.StatusOK, struct{}{})
}
