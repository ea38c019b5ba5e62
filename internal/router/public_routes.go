package router

import (
	"net/http"

	"karondoran-server/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, m *modules.AppModules) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	api.GET("/webinfo", m.Settings.Handler.GetWebInfo)

	api.GET("/news", m.News.Handler.ListPublished)
	api.GET("/news/:id", m.News.Handler.GetPublished)
	api.GET("/gallery", m.Gallery.Handler.List)
	api.GET("/government", m.Government.Handler.Structure)
	api.GET("/pages/:slug", m.Pages.Handler.GetBySlug)
}
