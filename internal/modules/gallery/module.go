package gallery

import (
	"karondoran-server/internal/modules/gallery/handler"
	"karondoran-server/internal/modules/gallery/repo"
	"karondoran-server/internal/modules/gallery/service"
	"karondoran-server/internal/platform/blobstore"
	platformservice "karondoran-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, galleryStore repo.GalleryStore, media service.MediaPreparer, blobs blobstore.Store, bucket string) *Module {
	moduleService := service.New(appService, galleryStore, media, blobs, bucket)

	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
