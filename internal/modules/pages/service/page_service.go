package service

import (
	"context"
	"errors"
	"strings"

	"karondoran-server/internal/model"
	moduledto "karondoran-server/internal/modules/pages/dto"
	"karondoran-server/internal/platform/crud"
	platformservice "karondoran-server/internal/platform/service"
	"karondoran-server/internal/utils"
)

const notFoundMessage = "Halaman tidak ditemukan"

func (s *Service) List(ctx context.Context) ([]model.Page, error) {
	pages, err := s.pageStore.List(ctx)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memuat halaman", err)
	}
	return pages, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Page, error) {
	page, err := s.pageStore.GetByID(ctx, id)
	return page, lookupError(err)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*model.Page, error) {
	page, err := s.pageStore.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	return page, lookupError(err)
}

func (s *Service) Create(ctx context.Context, req moduledto.CreatePageRequest) (*model.Page, error) {
	page := &model.Page{
		Title:   strings.TrimSpace(req.Title),
		Slug:    strings.ToLower(strings.TrimSpace(req.Slug)),
		Content: req.Content,
	}
	if page.Title == "" {
		return nil, platformservice.NewValidationError("Judul wajib diisi")
	}
	if err := s.checkSlug(ctx, page.Slug, ""); err != nil {
		return nil, err
	}
	if err := s.pageStore.Create(ctx, page); err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal menyimpan halaman", err)
	}
	return page, nil
}

func (s *Service) Update(ctx context.Context, id string, req moduledto.UpdatePageRequest) (*model.Page, error) {
	fields := map[string]any{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, platformservice.NewValidationError("Judul wajib diisi")
		}
		fields["title"] = title
	}
	if req.Slug != nil {
		slug := strings.ToLower(strings.TrimSpace(*req.Slug))
		if err := s.checkSlug(ctx, slug, id); err != nil {
			return nil, err
		}
		fields["slug"] = slug
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}

	page, err := s.pageStore.Update(ctx, id, fields)
	return page, lookupError(err)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return lookupError(s.pageStore.Delete(ctx, id))
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.pageStore.Count(ctx)
}

func (s *Service) checkSlug(ctx context.Context, slug, exceptID string) error {
	if ok, msg := utils.ValidateSlug(slug); !ok {
		return platformservice.NewValidationError(msg)
	}
	taken, err := s.pageStore.SlugTaken(ctx, slug, exceptID)
	if err != nil {
		return platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memeriksa slug", err)
	}
	if taken {
		return platformservice.NewConflictError("Slug sudah digunakan")
	}
	return nil
}

func lookupError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, crud.ErrNotFound) {
		return platformservice.WrapServiceError(platformservice.ErrorCodeNotFound, notFoundMessage, err)
	}
	return platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memproses halaman", err)
}
