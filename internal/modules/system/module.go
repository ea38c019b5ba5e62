package system

import (
	"karondoran-server/internal/modules/asset"
	"karondoran-server/internal/modules/system/handler"
	"karondoran-server/internal/modules/system/service"
	platformservice "karondoran-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, sources service.Sources, sweeper *asset.Sweeper) *Module {
	moduleService := service.New(appService, sources, sweeper)

	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
