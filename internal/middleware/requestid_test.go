package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func requestIDEngine(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		*seen = c.GetString(ContextRequestID)
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestIDMintsWhenAbsent(t *testing.T) {
	var seen string
	r := requestIDEngine(&seen)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(HeaderXRequestID))
}

func TestRequestIDEchoesClientID(t *testing.T) {
	var seen string
	r := requestIDEngine(&seen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderXRequestID, "front-desk-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "front-desk-42", seen)
	assert.Equal(t, "front-desk-42", w.Header().Get(HeaderXRequestID))
}
