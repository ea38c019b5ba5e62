package repo

import (
	"context"

	"karondoran-server/internal/model"
	"karondoran-server/internal/platform/crud"

	"gorm.io/gorm"
)

type StaffStore interface {
	GetByID(ctx context.Context, id string) (*model.Staff, error)
	Create(ctx context.Context, staff *model.Staff) error
	Update(ctx context.Context, id string, fields map[string]any) (*model.Staff, error)
	Delete(ctx context.Context, id string) error

	// ListActive orders by level, then sort order.
	ListActive(ctx context.Context) ([]model.Staff, error)
	// ListAll orders by sort order.
	ListAll(ctx context.Context) ([]model.Staff, error)
	Count(ctx context.Context) (int64, error)
	PhotoURLs(ctx context.Context) ([]string, error)
}

type StaffRepository struct {
	records *crud.Store[model.Staff]
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{records: crud.New[model.Staff](db, "level", "sort_order", "name", "created_at")}
}

func (r *StaffRepository) GetByID(ctx context.Context, id string) (*model.Staff, error) {
	return r.records.GetByID(ctx, id)
}

func (r *StaffRepository) Create(ctx context.Context, staff *model.Staff) error {
	return r.records.Create(ctx, staff)
}

func (r *StaffRepository) Update(ctx context.Context, id string, fields map[string]any) (*model.Staff, error) {
	return r.records.Update(ctx, id, fields)
}

func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	return r.records.Delete(ctx, id)
}

func (r *StaffRepository) ListActive(ctx context.Context) ([]model.Staff, error) {
	return r.records.GetAllOrdered(ctx, []crud.Order{
		{Field: "level", Ascending: true},
		{Field: "sort_order", Ascending: true},
		{Field: "name", Ascending: true},
	}, func(db *gorm.DB) *gorm.DB { return db.Where("is_active = ?", true) })
}

func (r *StaffRepository) ListAll(ctx context.Context) ([]model.Staff, error) {
	return r.records.GetAllOrdered(ctx, []crud.Order{
		{Field: "sort_order", Ascending: true},
		{Field: "level", Ascending: true},
	})
}

func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	return r.records.Count(ctx)
}

func (r *StaffRepository) PhotoURLs(ctx context.Context) ([]string, error) {
	return r.records.Pluck(ctx, "photo_url")
}
