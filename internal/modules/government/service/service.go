package service

import (
	"context"
	"mime/multipart"

	"karondoran-server/internal/consts"
	"karondoran-server/internal/model"
	"karondoran-server/internal/modules/asset"
	"karondoran-server/internal/modules/government/repo"
	mediaservice "karondoran-server/internal/modules/media/service"
	"karondoran-server/internal/platform/blobstore"
	platformservice "karondoran-server/internal/platform/service"
)

type MediaPreparer interface {
	Prepare(ctx context.Context, file *multipart.FileHeader) (*mediaservice.Prepared, error)
}

type Service struct {
	*platformservice.AppService
	staffStore repo.StaffStore
	media      MediaPreparer
	lifecycle  *asset.Lifecycle[model.Staff]
	bucket     string
}

func New(appService *platformservice.AppService, staffStore repo.StaffStore, media MediaPreparer, blobs blobstore.Store, bucket string) *Service {
	return &Service{
		AppService: appService,
		staffStore: staffStore,
		media:      media,
		lifecycle:  asset.NewLifecycle(Kind(bucket), staffStore, blobs),
		bucket:     bucket,
	}
}

// Kind stores staff photos under the government/ prefix of the bucket.
func Kind(bucket string) asset.Kind[model.Staff] {
	return asset.Kind[model.Staff]{
		Name:       "staff",
		Bucket:     bucket,
		PathPrefix: consts.StaffPhotoPrefix,
		Column:     "photo_url",
		ID:         func(s *model.Staff) string { return s.ID },
		AssetRef: func(s *model.Staff) string {
			if s.PhotoURL == nil {
				return ""
			}
			return *s.PhotoURL
		},
	}
}
