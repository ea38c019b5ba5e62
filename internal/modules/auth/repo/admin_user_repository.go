package repo

import (
	"context"
	"strings"

	"karondoran-server/internal/model"
	"karondoran-server/internal/platform/crud"

	"gorm.io/gorm"
)

type AdminUserStore interface {
	FindByID(ctx context.Context, id string) (*model.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	Create(ctx context.Context, user *model.AdminUser) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]model.AdminUser, error)
	SetActive(ctx context.Context, id string, active bool) (*model.AdminUser, error)
}

type AdminUserRepository struct {
	records *crud.Store[model.AdminUser]
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{records: crud.New[model.AdminUser](db, "created_at", "email")}
}

func (r *AdminUserRepository) FindByID(ctx context.Context, id string) (*model.AdminUser, error) {
	return r.records.GetByID(ctx, id)
}

// FindByEmail matches case-insensitively; emails are stored lowercased.
func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.records.First(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", email)
	})
}

func (r *AdminUserRepository) Create(ctx context.Context, user *model.AdminUser) error {
	return r.records.Create(ctx, user)
}

func (r *AdminUserRepository) Count(ctx context.Context) (int64, error) {
	return r.records.Count(ctx)
}

func (r *AdminUserRepository) List(ctx context.Context) ([]model.AdminUser, error) {
	return r.records.GetAll(ctx, "created_at", false)
}

func (r *AdminUserRepository) SetActive(ctx context.Context, id string, active bool) (*model.AdminUser, error) {
	return r.records.Update(ctx, id, map[string]any{"is_active": active})
}
