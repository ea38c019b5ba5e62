package repo

import (
	"context"

	"karondoran-server/internal/consts"
	"karondoran-server/internal/model"
	"karondoran-server/internal/platform/crud"

	"gorm.io/gorm"
)

type GalleryStore interface {
	GetByID(ctx context.Context, id string) (*model.Gallery, error)
	Create(ctx context.Context, item *model.Gallery) error
	Update(ctx context.Context, id string, fields map[string]any) (*model.Gallery, error)
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, category string) ([]model.Gallery, error)
	Count(ctx context.Context) (int64, error)
	SumImageSize(ctx context.Context) (int64, error)
	ImageURLs(ctx context.Context) ([]string, error)
}

type GalleryRepository struct {
	db      *gorm.DB
	records *crud.Store[model.Gallery]
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{
		db:      db,
		records: crud.New[model.Gallery](db, "created_at", "title"),
	}
}

func (r *GalleryRepository) GetByID(ctx context.Context, id string) (*model.Gallery, error) {
	return r.records.GetByID(ctx, id)
}

func (r *GalleryRepository) Create(ctx context.Context, item *model.Gallery) error {
	return r.records.Create(ctx, item)
}

func (r *GalleryRepository) Update(ctx context.Context, id string, fields map[string]any) (*model.Gallery, error) {
	return r.records.Update(ctx, id, fields)
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	return r.records.Delete(ctx, id)
}

// List returns gallery items newest first. An empty category or "Semua" lists every category.
func (r *GalleryRepository) List(ctx context.Context, category string) ([]model.Gallery, error) {
	return r.records.GetAll(ctx, "created_at", false, func(db *gorm.DB) *gorm.DB {
		if category == "" || category == consts.CategoryAll {
			return db
		}
		return db.Where("category = ?", category)
	})
}

func (r *GalleryRepository) Count(ctx context.Context) (int64, error) {
	return r.records.Count(ctx)
}

// SumImageSize is the storage used by gallery images.
func (r *GalleryRepository) SumImageSize(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Gallery{}).Select("COALESCE(SUM(image_size), 0)").Scan(&total).Error
	return total, err
}

func (r *GalleryRepository) ImageURLs(ctx context.Context) ([]string, error) {
	return r.records.Pluck(ctx, "image_url")
}
