package service

import (
	"context"
	"mime/multipart"
	"slices"
	"strings"

	"karondoran-server/internal/consts"
	"karondoran-server/internal/model"
	"karondoran-server/internal/modules/asset"
	moduledto "karondoran-server/internal/modules/news/dto"
	platformservice "karondoran-server/internal/platform/service"
)

const notFoundMessage = "Berita tidak ditemukan"

// ListPublished is the public news list.
func (s *Service) ListPublished(ctx context.Context, category string) ([]model.News, error) {
	items, err := s.newsStore.List(ctx, category, true)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memuat berita", err)
	}
	return items, nil
}

// GetPublished hides drafts behind the same not-found error as missing ids.
func (s *Service) GetPublished(ctx context.Context, id string) (*model.News, error) {
	news, err := s.newsStore.GetPublished(ctx, id)
	if err != nil {
		return nil, asset.ServiceError(err, notFoundMessage)
	}
	return news, nil
}

func (s *Service) List(ctx context.Context, category string) ([]model.News, error) {
	items, err := s.newsStore.List(ctx, category, false)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memuat berita", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.News, error) {
	news, err := s.newsStore.GetByID(ctx, id)
	if err != nil {
		return nil, asset.ServiceError(err, notFoundMessage)
	}
	return news, nil
}

func (s *Service) Create(ctx context.Context, req moduledto.CreateNewsRequest, file *multipart.FileHeader) (*asset.Result[model.News], error) {
	news := &model.News{
		Title:    strings.TrimSpace(req.Title),
		Category: strings.TrimSpace(req.Category),
		Content:  req.Content,
		Status:   strings.TrimSpace(req.Status),
	}
	if news.Status == "" {
		news.Status = consts.NewsStatusPublished
	}
	if err := validate(news.Title, news.Category, news.Status); err != nil {
		return nil, err
	}

	upload, err := s.prepare(ctx, file)
	if err != nil {
		return nil, err
	}

	result, err := s.lifecycle.CreateWithAsset(ctx, news, upload)
	if err != nil {
		return nil, asset.ServiceError(err, notFoundMessage)
	}
	return result, nil
}

func (s *Service) Update(ctx context.Context, id string, req moduledto.UpdateNewsRequest, file *multipart.FileHeader) (*asset.Result[model.News], error) {
	fields := map[string]any{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, platformservice.NewValidationError("Judul wajib diisi")
		}
		fields["title"] = title
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if !slices.Contains(consts.NewsCategories, category) {
			return nil, platformservice.NewValidationError("Kategori tidak valid")
		}
		fields["category"] = category
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		if status != consts.NewsStatusPublished && status != consts.NewsStatusDraft {
			return nil, platformservice.NewValidationError("Status tidak valid")
		}
		fields["status"] = status
	}

	upload, err := s.prepare(ctx, file)
	if err != nil {
		return nil, err
	}

	result, err := s.lifecycle.UpdateWithAsset(ctx, id, fields, upload)
	if err != nil {
		return nil, asset.ServiceError(err, notFoundMessage)
	}
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*asset.Result[model.News], error) {
	result, err := s.lifecycle.DeleteWithAsset(ctx, id)
	if err != nil {
		return nil, asset.ServiceError(err, notFoundMessage)
	}
	return result, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.newsStore.Count(ctx)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]model.News, error) {
	return s.newsStore.Recent(ctx, limit)
}

// SweepTarget lets the sweeper see which cover images are still in use.
func (s *Service) SweepTarget() asset.SweepTarget {
	return asset.SweepTarget{Bucket: s.bucket, References: s.newsStore.ImageURLs}
}

func (s *Service) prepare(ctx context.Context, file *multipart.FileHeader) (*asset.Upload, error) {
	if file == nil {
		return nil, nil
	}
	prepared, err := s.media.Prepare(ctx, file)
	if err != nil {
		return nil, err
	}
	return prepared.Upload, nil
}

func validate(title, category, status string) error {
	if title == "" {
		return platformservice.NewValidationError("Judul wajib diisi")
	}
	if !slices.Contains(consts.NewsCategories, category) {
		return platformservice.NewValidationError("Kategori tidak valid")
	}
	if status != consts.NewsStatusPublished && status != consts.NewsStatusDraft {
		return platformservice.NewValidationError("Status tidak valid")
	}
	return nil
}
