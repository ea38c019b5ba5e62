package auth

import (
	"karondoran-server/internal/modules/auth/handler"
	"karondoran-server/internal/modules/auth/repo"
	"karondoran-server/internal/modules/auth/service"
	platformservice "karondoran-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.AdminUserStore) *Module {
	moduleService := service.New(appService, userStore)

	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
