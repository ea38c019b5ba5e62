package router

import (
	"net/http"
	"strings"

	"karondoran-server/internal/config"
	"karondoran-server/internal/middleware"
	"karondoran-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// registerStorageRoutes serves each bucket directory under
// <public_url_prefix><bucket>/ without directory listings.
func registerStorageRoutes(r *gin.Engine, storage config.StorageConfig, blobs BucketDirs, appService *service.AppService) error {
	prefix := strings.TrimSuffix(storage.PublicURLPrefix, "/")
	for _, bucket := range storage.Buckets() {
		dir, err := blobs.BucketDir(bucket)
		if err != nil {
			return err
		}
		r.Group(prefix+"/"+bucket, middleware.StaticCacheMiddleware(appService)).
			StaticFS("", gin.Dir(dir, false))
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, prefix+"/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "File tidak ditemukan"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Rute tidak ditemukan"})
	})
	return nil
}
