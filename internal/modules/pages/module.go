package pages

import (
	"karondoran-server/internal/modules/pages/handler"
	"karondoran-server/internal/modules/pages/repo"
	"karondoran-server/internal/modules/pages/service"
	platformservice "karondoran-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, pageStore repo.PageStore) *Module {
	moduleService := service.New(appService, pageStore)

	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
