package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	"mlplayground/middleware"
)

func newTestEngine() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)

	var seenID string
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		seenID = middleware.GetRequestID(c)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router, &seenID
}

func TestRequestIDHeader(t *testing.T) {
	router, seenID := newTestEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(w, req)

	id := w.Header().Get(middleware.RequestIDHeader)
	if id == "" {
		t.Fatal("response misses the request id header")
	}
	if _, err := uuid.FromString(id); err != nil {
		t.Fatalf("request id %q is not a uuid: %v", id, err)
	}
	if *seenID != id {
		t.Fatalf("handler saw %q, response carries %q", *seenID, id)
	}
}

func TestRequestIDUniquePerRequest(t *testing.T) {
	router, _ := newTestEngine()

	ids := make(map[string]bool)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(w, req)
		ids[w.Header().Get(middleware.RequestIDHeader)] = true
	}

	if len(ids) != 5 {
		t.Fatalf("expected 5 distinct request ids, got %d", len(ids))
	}
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if id := middleware.GetRequestID(c); id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}
}
