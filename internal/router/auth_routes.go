package router

import (
	"karondoran-server/internal/middleware"
	authhandler "karondoran-server/internal/modules/auth/handler"
	"karondoran-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *authhandler.Handler, appService *service.AppService) {
	api.POST("/login", authLimiter, h.Login)
	api.POST("/register", authLimiter, h.Register)

	// logout needs a token but not an active account
	api.POST("/logout", middleware.JWTAuth(appService), h.Logout)
}
