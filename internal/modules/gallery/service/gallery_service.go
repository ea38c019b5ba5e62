package service

import (
	"context"
	"mime/multipart"
	"slices"
	"strings"

	"karondoran-server/internal/consts"
	"karondoran-server/internal/model"
	"karondoran-server/internal/modules/asset"
	moduledto "karondoran-server/internal/modules/gallery/dto"
	platformservice "karondoran-server/internal/platform/service"
)

const notFoundMessage = "Foto galeri tidak ditemukan"

func (s *Service) List(ctx context.Context, category string) ([]model.Gallery, error) {
	items, err := s.galleryStore.List(ctx, category)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memuat galeri", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Gallery, error) {
	item, err := s.galleryStore.GetByID(ctx, id)
	if err != nil {
		return nil, asset.ServiceError(err, notFoundMessage)
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req moduledto.CreateGalleryRequest, file *multipart.FileHeader) (*asset.Result[model.Gallery], error) {
	item := &model.Gallery{
		Title:    strings.TrimSpace(req.Title),
		Category: strings.TrimSpace(req.Category),
	}
	if item.Title == "" {
		return nil, platformservice.NewValidationError("Judul wajib diisi")
	}
	if !slices.Contains(consts.GalleryCategories, item.Category) {
		return nil, platformservice.NewValidationError("Kategori tidak valid")
	}
	if file == nil {
		return nil, platformservice.NewValidationError("Pilih gambar untuk galeri")
	}

	prepared, err := s.media.Prepare(ctx, file)
	if err != nil {
		return nil, err
	}

	result, err := s.lifecycle.CreateWithAsset(ctx, item, prepared.Upload)
	if err != nil {
		return nil, asset.ServiceError(err, notFoundMessage)
	}
	return result, nil
}

func (s *Service) Update(ctx context.Context, id string, req moduledto.UpdateGalleryRequest, file *multipart.FileHeader) (*asset.Result[model.Gallery], error) {
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
		if !slices.Contains(consts.GalleryCategories, category) {
			return nil, platformservice.NewValidationError("Kategori tidak valid")
		}
		fields["category"] = category
	}

	var upload *asset.Upload
	if file != nil {
		prepared, err := s.media.Prepare(ctx, file)
		if err != nil {
			return nil, err
		}
		upload = prepared.Upload
	}

	result, err := s.lifecycle.UpdateWithAsset(ctx, id, fields, upload)
	if err != nil {
		return nil, asset.ServiceError(err, notFoundMessage)
	}
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*asset.Result[model.Gallery], error) {
	result, err := s.lifecycle.DeleteWithAsset(ctx, id)
	if err != nil {
		return nil, asset.ServiceError(err, notFoundMessage)
	}
	return result, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.galleryStore.Count(ctx)
}

func (s *Service) StorageUsed(ctx context.Context) (int64, error) {
	return s.galleryStore.SumImageSize(ctx)
}

func (s *Service) SweepTarget() asset.SweepTarget {
	return asset.SweepTarget{Bucket: s.bucket, References: s.galleryStore.ImageURLs}
}
