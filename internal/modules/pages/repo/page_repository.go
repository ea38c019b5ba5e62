package repo

import (
	"context"

	"karondoran-server/internal/model"
	"karondoran-server/internal/platform/crud"

	"gorm.io/gorm"
)

type PageStore interface {
	List(ctx context.Context) ([]model.Page, error)
	GetByID(ctx context.Context, id string) (*model.Page, error)
	GetBySlug(ctx context.Context, slug string) (*model.Page, error)
	SlugTaken(ctx context.Context, slug, exceptID string) (bool, error)
	Create(ctx context.Context, page *model.Page) error
	Update(ctx context.Context, id string, fields map[string]any) (*model.Page, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type PageRepository struct {
	records *crud.Store[model.Page]
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{records: crud.New[model.Page](db, "title", "created_at")}
}

func (r *PageRepository) List(ctx context.Context) ([]model.Page, error) {
	return r.records.GetAll(ctx, "title", true)
}

func (r *PageRepository) GetByID(ctx context.Context, id string) (*model.Page, error) {
	return r.records.GetByID(ctx, id)
}

func (r *PageRepository) GetBySlug(ctx context.Context, slug string) (*model.Page, error) {
	return r.records.First(ctx, func(db *gorm.DB) *gorm.DB { return db.Where("slug = ?", slug) })
}

func (r *PageRepository) SlugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	count, err := r.records.Count(ctx, func(db *gorm.DB) *gorm.DB {
		db = db.Where("slug = ?", slug)
		if exceptID != "" {
			db = db.Where("id <> ?", exceptID)
		}
		return db
	})
	return count > 0, err
}

func (r *PageRepository) Create(ctx context.Context, page *model.Page) error {
	return r.records.Create(ctx, page)
}

func (r *PageRepository) Update(ctx context.Context, id string, fields map[string]any) (*model.Page, error) {
	return r.records.Update(ctx, id, fields)
}

func (r *PageRepository) Delete(ctx context.Context, id string) error {
	return r.records.Delete(ctx, id)
}

func (r *PageRepository) Count(ctx context.Context) (int64, error) {
	return r.records.Count(ctx)
}
