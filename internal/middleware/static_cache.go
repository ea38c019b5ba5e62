package middleware

import (
	"karondoran-server/internal/consts"
	"karondoran-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware sets Cache-Control on served blobs from the
// static_cache_control setting.
func StaticCacheMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cc := appService.GetString(consts.ConfigStaticCacheControl); cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}
