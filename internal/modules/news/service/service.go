package service

import (
	"context"
	"mime/multipart"

	"karondoran-server/internal/model"
	"karondoran-server/internal/modules/asset"
	mediaservice "karondoran-server/internal/modules/media/service"
	"karondoran-server/internal/modules/news/repo"
	"karondoran-server/internal/platform/blobstore"
	platformservice "karondoran-server/internal/platform/service"
)

// MediaPreparer turns an uploaded file into a storable asset.
type MediaPreparer interface {
	Prepare(ctx context.Context, file *multipart.FileHeader) (*mediaservice.Prepared, error)
}

type Service struct {
	*platformservice.AppService
	newsStore repo.NewsStore
	media     MediaPreparer
	lifecycle *asset.Lifecycle[model.News]
	bucket    string
}

func New(appService *platformservice.AppService, newsStore repo.NewsStore, media MediaPreparer, blobs blobstore.Store, bucket string) *Service {
	return &Service{
		AppService: appService,
		newsStore:  newsStore,
		media:      media,
		lifecycle:  asset.NewLifecycle(Kind(bucket), newsStore, blobs),
		bucket:     bucket,
	}
}

// Kind describes how news items hold their optional cover image.
func Kind(bucket string) asset.Kind[model.News] {
	return asset.Kind[model.News]{
		Name:     "news",
		Bucket:   bucket,
		Column:   "image_url",
		ID:       func(n *model.News) string { return n.ID },
		AssetRef: func(n *model.News) string { return deref(n.ImageURL) },
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
