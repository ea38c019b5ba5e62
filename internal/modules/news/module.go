package news

import (
	"karondoran-server/internal/modules/news/handler"
	"karondoran-server/internal/modules/news/repo"
	"karondoran-server/internal/modules/news/service"
	"karondoran-server/internal/platform/blobstore"
	platformservice "karondoran-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, newsStore repo.NewsStore, media service.MediaPreparer, blobs blobstore.Store, bucket string) *Module {
	moduleService := service.New(appService, newsStore, media, blobs, bucket)

	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
