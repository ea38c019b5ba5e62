package middleware

import (
	"fmt"
	"net/http"

	"karondoran-server/internal/consts"
	"karondoran-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware caps JSON request bodies. Multipart routes carry their
// own UploadBodyLimitMiddleware and are skipped here.
func BodyLimitMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() == "multipart/form-data" {
			c.Next()
			return
		}

		maxSizeMB := appService.GetInt(consts.ConfigMaxRequestBodySize)
		if maxSizeMB <= 0 {
			maxSizeMB = 2
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(maxSizeMB)*1024*1024)
		c.Next()
	}
}

// UploadBodyLimitMiddleware caps multipart uploads at max_upload_size plus
// headroom for the other form fields.
func UploadBodyLimitMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := appService.GetInt(consts.ConfigMaxUploadSize)
		if maxSizeMB <= 0 {
			maxSizeMB = 10
		}
		maxBytes := int64(maxSizeMB)*1024*1024 + uploadFormOverhead

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("Ukuran file maksimal %dMB", maxSizeMB)})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

const uploadFormOverhead = 256 * 1024
