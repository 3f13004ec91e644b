package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// TestRequestID_GeneratedWhenAbsent tests that a request without an id gets one
func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a generated request id header")
	}
}

// TestRequestID_InboundPassedThrough tests that a caller-supplied id survives
func TestRequestID_InboundPassedThrough(t *testing.T) {
	var seen string

	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		id, _ := c.Get("requestID")
		seen = id.(string)
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(RequestIDHeader, "req-abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "req-abc-123" {
		t.Errorf("expected inbound id echoed back, got %q", got)
	}
	if seen != "req-abc-123" {
		t.Errorf("expected inbound id in the request context, got %q", seen)
	}
}
