package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"karondoran-server/internal/consts"

	"github.com/gin-gonic/gin"
)

func rateLimitedRouter() *gin.Engine {
	r := gin.New()
	r.Use(RateLimitMiddleware(testService, consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = addr
	return req
}

func TestRateLimitMiddleware_DisabledAllowsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	setSetting(t, gdb, consts.ConfigRateLimitEnabled, "false")

	r := rateLimitedRouter()
	for i := 0; i < 3; i++ {
		if w := serve(r, requestFrom("1.2.3.4:1111")); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

// Verifies a burst of one with no refill blocks the second request from the
// same IP only.
func TestRateLimitMiddleware_EnabledBlocksBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	setSetting(t, gdb, consts.ConfigRateLimitEnabled, "true")
	setSetting(t, gdb, consts.ConfigRateLimitAuthRPS, "0")
	setSetting(t, gdb, consts.ConfigRateLimitAuthBurst, "1")

	r := rateLimitedRouter()
	if w := serve(r, requestFrom("1.2.3.4:1111")); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := serve(r, requestFrom("1.2.3.4:1111")); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w := serve(r, requestFrom("5.6.7.8:1111")); w.Code != http.StatusOK {
		t.Fatalf("expected other IP to pass, got %d", w.Code)
	}
}
