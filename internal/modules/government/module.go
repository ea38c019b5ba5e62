package government

import (
	"karondoran-server/internal/modules/government/handler"
	"karondoran-server/internal/modules/government/repo"
	"karondoran-server/internal/modules/government/service"
	"karondoran-server/internal/platform/blobstore"
	platformservice "karondoran-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, staffStore repo.StaffStore, media service.MediaPreparer, blobs blobstore.Store, bucket string) *Module {
	moduleService := service.New(appService, staffStore, media, blobs, bucket)

	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
