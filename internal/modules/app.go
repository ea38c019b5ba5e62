package modules

import (
	"karondoran-server/internal/config"
	"karondoran-server/internal/modules/asset"
	"karondoran-server/internal/modules/auth"
	authrepo "karondoran-server/internal/modules/auth/repo"
	"karondoran-server/internal/modules/gallery"
	galleryrepo "karondoran-server/internal/modules/gallery/repo"
	"karondoran-server/internal/modules/government"
	governmentrepo "karondoran-server/internal/modules/government/repo"
	"karondoran-server/internal/modules/media"
	"karondoran-server/internal/modules/news"
	newsrepo "karondoran-server/internal/modules/news/repo"
	"karondoran-server/internal/modules/pages"
	pagesrepo "karondoran-server/internal/modules/pages/repo"
	"karondoran-server/internal/modules/settings"
	settingsrepo "karondoran-server/internal/modules/settings/repo"
	"karondoran-server/internal/modules/system"
	systemservice "karondoran-server/internal/modules/system/service"
	"karondoran-server/internal/platform/blobstore"
	platformservice "karondoran-server/internal/platform/service"

	"gorm.io/gorm"
)

type AppModules struct {
	Auth       *auth.Module
	Media      *media.Module
	News       *news.Module
	Gallery    *gallery.Module
	Government *government.Module
	Pages      *pages.Module
	Settings   *settings.Module
	System     *system.Module
}

// Stores are the record stores behind each module.
type Stores struct {
	Users    authrepo.AdminUserStore
	News     newsrepo.NewsStore
	Gallery  galleryrepo.GalleryStore
	Staff    governmentrepo.StaffStore
	Pages    pagesrepo.PageStore
	Settings settingsrepo.SettingStore
}

// NewStores builds every GORM-backed store on one connection.
func NewStores(db *gorm.DB) Stores {
	return Stores{
		Users:    authrepo.NewAdminUserRepository(db),
		News:     newsrepo.NewNewsRepository(db),
		Gallery:  galleryrepo.NewGalleryRepository(db),
		Staff:    governmentrepo.NewStaffRepository(db),
		Pages:    pagesrepo.NewPageRepository(db),
		Settings: settingsrepo.NewSettingRepository(db),
	}
}

func New(
	appService *platformservice.AppService,
	stores Stores,
	blobs blobstore.Store,
	storage config.StorageConfig,
	upload config.UploadConfig,
) *AppModules {
	mediaModule := media.New(appService, upload)
	newsModule := news.New(appService, stores.News, mediaModule.Service, blobs, storage.NewsBucket)
	galleryModule := gallery.New(appService, stores.Gallery, mediaModule.Service, blobs, storage.GalleryBucket)
	governmentModule := government.New(appService, stores.Staff, mediaModule.Service, blobs, storage.StaffBucket)
	pagesModule := pages.New(appService, stores.Pages)

	sweeper := asset.NewSweeper(blobs, asset.DefaultSweepGrace,
		newsModule.Service.SweepTarget(),
		galleryModule.Service.SweepTarget(),
		governmentModule.Service.SweepTarget(),
	)
	systemModule := system.New(appService, systemservice.Sources{
		News:    newsModule.Service,
		Gallery: galleryModule.Service,
		Pages:   pagesModule.Service,
		Staff:   governmentModule.Service,
	}, sweeper)

	return &AppModules{
		Auth:       auth.New(appService, stores.Users),
		Media:      mediaModule,
		News:       newsModule,
		Gallery:    galleryModule,
		Government: governmentModule,
		Pages:      pagesModule,
		Settings:   settings.New(appService, stores.Settings),
		System:     systemModule,
	}
}
