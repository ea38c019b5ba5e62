package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"karondoran-server/internal/db"
	"karondoran-server/internal/model"
	"karondoran-server/internal/utils"

	"github.com/gin-gonic/gin"
)

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, userID string) (string, *utils.LoginClaims) {
	t.Helper()
	token, err := utils.GenerateLoginToken(userID, userID+"@desa.id", time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken: %v", err)
	}
	claims, err := utils.ParseLoginToken(token)
	if err != nil {
		t.Fatalf("ParseLoginToken: %v", err)
	}
	return "Bearer " + token, claims
}

func TestJWTAuth_MissingOrMalformedHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", JWTAuth(nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, header := range []string{"", "Token abc", "Bearer not-a-jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		if w := serve(r, req); w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

// Verifies a valid token puts the session into the context.
func TestJWTAuth_ValidTokenSetsContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)
	header, claims := bearer(t, "admin-1")

	r := gin.New()
	r.GET("/x", JWTAuth(testService), func(c *gin.Context) {
		_, hasExpiry := c.Get("token_expires_at")
		if c.GetString("id") != "admin-1" || c.GetString("email") != "admin-1@desa.id" ||
			c.GetString("token_id") != claims.ID || !hasExpiry {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", header)
	if w := serve(r, req); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

// Verifies a logged-out token is refused.
func TestJWTAuth_RevokedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)
	header, claims := bearer(t, "admin-1")
	testService.RevokeToken(claims.ID, claims.ExpiresAt.Time)

	r := gin.New()
	r.GET("/x", JWTAuth(testService), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", header)
	if w := serve(r, req); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func activeCheckRouter(userID string) *gin.Engine {
	r := gin.New()
	r.GET("/x",
		func(c *gin.Context) {
			if userID != "" {
				c.Set("id", userID)
			}
			c.Next()
		},
		ActiveAdminCheck(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func TestActiveAdminCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)
	resetStatusCache()

	active := model.AdminUser{Email: "kepala@desa.id", Password: "x", IsActive: true}
	pending := model.AdminUser{Email: "staf@desa.id", Password: "x"}
	if err := db.DB.Create(&active).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := db.DB.Create(&pending).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	cases := []struct {
		name   string
		userID string
		want   int
	}{
		{"active", active.ID, http.StatusOK},
		{"pending", pending.ID, http.StatusForbidden},
		{"missing id", "", http.StatusUnauthorized},
		{"unknown", "tidak-ada", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(activeCheckRouter(tc.userID), httptest.NewRequest(http.MethodGet, "/x", nil))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

// Verifies activation takes effect once the cached status is cleared.
func TestActiveAdminCheck_CacheCleared(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)
	resetStatusCache()

	user := model.AdminUser{Email: "staf@desa.id", Password: "x"}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	r := activeCheckRouter(user.ID)

	if w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil)); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	if err := db.DB.Model(&model.AdminUser{}).Where("id = ?", user.ID).Update("is_active", true).Error; err != nil {
		t.Fatalf("activate: %v", err)
	}
	if w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil)); w.Code != http.StatusForbidden {
		t.Fatalf("expected cached 403, got %d", w.Code)
	}

	ClearUserStatusCache(user.ID)
	if w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil)); w.Code != http.StatusOK {
		t.Fatalf("expected 200 after clearing cache, got %d", w.Code)
	}
}
