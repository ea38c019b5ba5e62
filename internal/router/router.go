package router

import (
	"karondoran-server/internal/config"
	"karondoran-server/internal/consts"
	"karondoran-server/internal/middleware"
	"karondoran-server/internal/modules"
	"karondoran-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// BucketDirs locates the directory served for each blob bucket.
type BucketDirs interface {
	BucketDir(bucket string) (string, error)
}

type Router struct {
	modules *modules.AppModules
	service *service.AppService
	blobs   BucketDirs
	storage config.StorageConfig
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService, blobs BucketDirs, storage config.StorageConfig) *Router {
	return &Router{
		modules: appModules,
		service: appService,
		blobs:   blobs,
		storage: storage,
	}
}

func (rt *Router) Init(r *gin.Engine) error {
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if err := registerStorageRoutes(r, rt.storage, rt.blobs, rt.service); err != nil {
		return err
	}

	api := r.Group("/api")
	api.Use(middleware.BodyLimitMiddleware(rt.service))

	// one limiter shared by every auth endpoint
	authLimiter := middleware.RateLimitMiddleware(rt.service, consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst)

	registerPublicRoutes(api, rt.modules)
	registerAuthRoutes(api, authLimiter, rt.modules.Auth.Handler, rt.service)
	registerAdminRoutes(api, rt.modules, rt.service)
	return nil
}
