package service

import (
	"context"

	"karondoran-server/internal/model"
	"karondoran-server/internal/modules/asset"
	platformservice "karondoran-server/internal/platform/service"
)

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type NewsFeed interface {
	Counter
	Recent(ctx context.Context, limit int) ([]model.News, error)
}

type GalleryMeter interface {
	Counter
	StorageUsed(ctx context.Context) (int64, error)
}

// Sources are the content modules the dashboard reports on.
type Sources struct {
	News    NewsFeed
	Gallery GalleryMeter
	Pages   Counter
	Staff   Counter
}

type Service struct {
	*platformservice.AppService
	sources Sources
	sweeper *asset.Sweeper
}

func New(appService *platformservice.AppService, sources Sources, sweeper *asset.Sweeper) *Service {
	return &Service{
		AppService: appService,
		sources:    sources,
		sweeper:    sweeper,
	}
}
