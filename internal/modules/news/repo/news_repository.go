package repo

import (
	"context"

	"karondoran-server/internal/consts"
	"karondoran-server/internal/model"
	"karondoran-server/internal/platform/crud"

	"gorm.io/gorm"
)

type NewsStore interface {
	GetByID(ctx context.Context, id string) (*model.News, error)
	Create(ctx context.Context, news *model.News) error
	Update(ctx context.Context, id string, fields map[string]any) (*model.News, error)
	Delete(ctx context.Context, id string) error

	// List returns news newest first. An empty category or "Semua" lists every category.
	List(ctx context.Context, category string, publishedOnly bool) ([]model.News, error)
	GetPublished(ctx context.Context, id string) (*model.News, error)
	Recent(ctx context.Context, limit int) ([]model.News, error)
	Count(ctx context.Context) (int64, error)
	ImageURLs(ctx context.Context) ([]string, error)
}

type NewsRepository struct {
	records *crud.Store[model.News]
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{records: crud.New[model.News](db, "created_at", "title")}
}

func byCategory(category string) crud.Scope {
	return func(db *gorm.DB) *gorm.DB {
		if category == "" || category == consts.CategoryAll {
			return db
		}
		return db.Where("category = ?", category)
	}
}

func published(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", consts.NewsStatusPublished)
}

func (r *NewsRepository) GetByID(ctx context.Context, id string) (*model.News, error) {
	return r.records.GetByID(ctx, id)
}

func (r *NewsRepository) Create(ctx context.Context, news *model.News) error {
	return r.records.Create(ctx, news)
}

func (r *NewsRepository) Update(ctx context.Context, id string, fields map[string]any) (*model.News, error) {
	return r.records.Update(ctx, id, fields)
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	return r.records.Delete(ctx, id)
}

func (r *NewsRepository) List(ctx context.Context, category string, publishedOnly bool) ([]model.News, error) {
	scopes := []crud.Scope{byCategory(category)}
	if publishedOnly {
		scopes = append(scopes, published)
	}
	return r.records.GetAll(ctx, "created_at", false, scopes...)
}

func (r *NewsRepository) GetPublished(ctx context.Context, id string) (*model.News, error) {
	return r.records.First(ctx, published, func(db *gorm.DB) *gorm.DB { return db.Where("id = ?", id) })
}

func (r *NewsRepository) Recent(ctx context.Context, limit int) ([]model.News, error) {
	return r.records.GetAll(ctx, "created_at", false, func(db *gorm.DB) *gorm.DB { return db.Limit(limit) })
}

func (r *NewsRepository) Count(ctx context.Context) (int64, error) {
	return r.records.Count(ctx)
}

func (r *NewsRepository) ImageURLs(ctx context.Context) ([]string, error) {
	return r.records.Pluck(ctx, "image_url")
}
