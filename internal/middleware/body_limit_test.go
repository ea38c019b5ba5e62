package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"karondoran-server/internal/consts"

	"github.com/gin-gonic/gin"
)

func TestUploadBodyLimitMiddleware_RejectsTooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	setSetting(t, gdb, consts.ConfigMaxUploadSize, "1")

	r := gin.New()
	r.POST("/upload", UploadBodyLimitMiddleware(testService), func(c *gin.Context) { c.Status(http.StatusOK) })

	payload := bytes.Repeat([]byte("a"), 2*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(payload))
	req.ContentLength = int64(len(payload))

	if w := serve(r, req); w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", w.Code)
	}
}

func readAllHandler(c *gin.Context) {
	if _, err := io.ReadAll(c.Request.Body); err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"err": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

func TestBodyLimitMiddleware_LimitsJSONBodies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	setSetting(t, gdb, consts.ConfigMaxRequestBodySize, "1")

	r := gin.New()
	r.POST("/x", BodyLimitMiddleware(testService), readAllHandler)

	payload := bytes.Repeat([]byte("a"), 2*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = int64(len(payload))

	if w := serve(r, req); w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d body=%s", w.Code, w.Body.String())
	}
}

// Verifies multipart bodies are left to the upload limit.
func TestBodyLimitMiddleware_SkipsMultipart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	setSetting(t, gdb, consts.ConfigMaxRequestBodySize, "1")

	r := gin.New()
	r.POST("/x", BodyLimitMiddleware(testService), readAllHandler)

	payload := bytes.Repeat([]byte("a"), 2*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	req.ContentLength = int64(len(payload))

	if w := serve(r, req); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
