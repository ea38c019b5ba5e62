package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"karondoran-server/internal/db"
	"karondoran-server/internal/model"
	"karondoran-server/internal/platform/service"
	"karondoran-server/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	// statusCache holds whether an admin account is active.
	// Key: user id (string), Value: cachedStatus
	statusCache sync.Map
)

const statusCacheTTL = 1 * time.Minute

type cachedStatus struct {
	Active    bool
	ExpiresAt time.Time
}

// TokenRevocations reports whether a session token was logged out.
type TokenRevocations interface {
	IsTokenRevoked(tokenID string) bool
}

// ClearUserStatusCache drops the cached activation state of an account.
func ClearUserStatusCache(userID string) {
	statusCache.Delete(userID)

	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = redisClient.Del(ctx, service.RedisKey("auth", "user_status", userID)).Err()
	}
}

// JWTAuth accepts "Authorization: Bearer <token>" and puts the session into
// the context as "id", "email", "token_id" and "token_expires_at".
func JWTAuth(revocations TokenRevocations) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Silakan masuk terlebih dahulu"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Format token tidak valid"})
			c.Abort()
			return
		}

		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token tidak valid atau kedaluwarsa"})
			c.Abort()
			return
		}
		if revocations != nil && revocations.IsTokenRevoked(claims.ID) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi telah berakhir, silakan masuk kembali"})
			c.Abort()
			return
		}

		c.Set("id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("token_id", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_expires_at", claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// ActiveAdminCheck refuses accounts that are gone or not activated yet.
func ActiveAdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("id")
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Informasi akun tidak ditemukan"})
			c.Abort()
			return
		}

		active, found := lookupCachedStatus(uid)
		if !found {
			var user model.AdminUser
			if err := db.DB.Select("is_active").Where("id = ?", uid).First(&user).Error; err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Akun tidak ditemukan"})
				c.Abort()
				return
			}
			active = user.IsActive
			storeCachedStatus(uid, active)
		}

		if !active {
			c.JSON(http.StatusForbidden, gin.H{"error": "Akun Anda belum diaktifkan oleh administrator", "code": service.ErrorCodeAccountPending})
			c.Abort()
			return
		}
		c.Next()
	}
}

func lookupCachedStatus(uid string) (bool, bool) {
	// Redis first so every instance sees a deactivation, then the local cache.
	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		cached, err := redisClient.Get(ctx, service.RedisKey("auth", "user_status", uid)).Result()
		if err == nil {
			if active, parseErr := strconv.ParseBool(cached); parseErr == nil {
				statusCache.Store(uid, cachedStatus{Active: active, ExpiresAt: time.Now().Add(statusCacheTTL)})
				return active, true
			}
		}
	}

	if val, ok := statusCache.Load(uid); ok {
		if cached, typeOk := val.(cachedStatus); typeOk {
			if time.Now().Before(cached.ExpiresAt) {
				return cached.Active, true
			}
			statusCache.Delete(uid)
		}
	}
	return false, false
}

func storeCachedStatus(uid string, active bool) {
	statusCache.Store(uid, cachedStatus{Active: active, ExpiresAt: time.Now().Add(statusCacheTTL)})

	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = redisClient.Set(ctx, service.RedisKey("auth", "user_status", uid), strconv.FormatBool(active), statusCacheTTL).Err()
	}
}
