package router

import (
	"karondoran-server/internal/middleware"
	"karondoran-server/internal/modules"
	"karondoran-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, m *modules.AppModules, appService *service.AppService) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuth(appService))
	adminGroup.Use(middleware.ActiveAdminCheck())

	upload := middleware.UploadBodyLimitMiddleware(appService)

	adminGroup.GET("/me", m.Auth.Handler.Me)
	adminGroup.GET("/dashboard", m.System.Handler.GetDashboard)
	adminGroup.POST("/storage/sweep", m.System.Handler.SweepStorage)
	adminGroup.POST("/media/preview", upload, m.Media.Handler.Preview)

	adminGroup.GET("/news", m.News.Handler.AdminList)
	adminGroup.POST("/news", upload, m.News.Handler.Create)
	adminGroup.GET("/news/:id", m.News.Handler.AdminGet)
	adminGroup.PATCH("/news/:id", upload, m.News.Handler.Update)
	adminGroup.DELETE("/news/:id", m.News.Handler.Delete)

	adminGroup.GET("/gallery", m.Gallery.Handler.List)
	adminGroup.POST("/gallery", upload, m.Gallery.Handler.Create)
	adminGroup.GET("/gallery/:id", m.Gallery.Handler.Get)
	adminGroup.PATCH("/gallery/:id", upload, m.Gallery.Handler.Update)
	adminGroup.DELETE("/gallery/:id", m.Gallery.Handler.Delete)

	adminGroup.GET("/government", m.Government.Handler.List)
	adminGroup.POST("/government", upload, m.Government.Handler.Create)
	adminGroup.GET("/government/:id", m.Government.Handler.Get)
	adminGroup.PATCH("/government/:id", upload, m.Government.Handler.Update)
	adminGroup.DELETE("/government/:id", m.Government.Handler.Delete)

	adminGroup.GET("/pages", m.Pages.Handler.List)
	adminGroup.POST("/pages", m.Pages.Handler.Create)
	adminGroup.GET("/pages/:id", m.Pages.Handler.Get)
	adminGroup.PATCH("/pages/:id", m.Pages.Handler.Update)
	adminGroup.DELETE("/pages/:id", m.Pages.Handler.Delete)

	adminGroup.GET("/settings", m.Settings.Handler.GetSettings)
	adminGroup.PATCH("/settings", m.Settings.Handler.UpdateSettings)

	adminGroup.GET("/users", m.Auth.Handler.ListUsers)
	adminGroup.PATCH("/users/:id/activation", m.Auth.Handler.SetActivation)
}
