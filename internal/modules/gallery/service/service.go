package service

import (
	"context"
	"mime/multipart"

	"karondoran-server/internal/model"
	"karondoran-server/internal/modules/asset"
	"karondoran-server/internal/modules/gallery/repo"
	mediaservice "karondoran-server/internal/modules/media/service"
	"karondoran-server/internal/platform/blobstore"
	platformservice "karondoran-server/internal/platform/service"
)

type MediaPreparer interface {
	Prepare(ctx context.Context, file *multipart.FileHeader) (*mediaservice.Prepared, error)
}

type Service struct {
	*platformservice.AppService
	galleryStore repo.GalleryStore
	media        MediaPreparer
	lifecycle    *asset.Lifecycle[model.Gallery]
	bucket       string
}

func New(appService *platformservice.AppService, galleryStore repo.GalleryStore, media MediaPreparer, blobs blobstore.Store, bucket string) *Service {
	return &Service{
		AppService:   appService,
		galleryStore: galleryStore,
		media:        media,
		lifecycle:    asset.NewLifecycle(Kind(bucket), galleryStore, blobs),
		bucket:       bucket,
	}
}

// Kind describes gallery items, which cannot exist without their image.
func Kind(bucket string) asset.Kind[model.Gallery] {
	return asset.Kind[model.Gallery]{
		Name:     "gallery",
		Bucket:   bucket,
		Column:   "image_url",
		Required: true,
		ID:       func(g *model.Gallery) string { return g.ID },
		AssetRef: func(g *model.Gallery) string { return g.ImageURL },
		ExtraFields: func(u *asset.Upload) map[string]any {
			return map[string]any{"image_size": u.Size()}
		},
	}
}
