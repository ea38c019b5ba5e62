package media

import (
	"karondoran-server/internal/config"
	"karondoran-server/internal/modules/media/handler"
	"karondoran-server/internal/modules/media/service"
	"karondoran-server/internal/platform/imaging"
	platformservice "karondoran-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, upload config.UploadConfig) *Module {
	normalizer := imaging.New(imaging.WithMaxDimension(upload.MaxDimension))
	moduleService := service.New(appService, normalizer, upload)

	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
