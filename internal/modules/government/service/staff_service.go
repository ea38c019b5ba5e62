package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"karondoran-server/internal/consts"
	"karondoran-server/internal/model"
	"karondoran-server/internal/modules/asset"
	moduledto "karondoran-server/internal/modules/government/dto"
	platformservice "karondoran-server/internal/platform/service"
)

const notFoundMessage = "Perangkat desa tidak ditemukan"

// Structure groups active staff by level. Levels without active staff are
// left out.
func (s *Service) Structure(ctx context.Context) ([]moduledto.LevelGroup, error) {
	staff, err := s.staffStore.ListActive(ctx)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memuat struktur pemerintahan", err)
	}
	return GroupByLevel(staff), nil
}

// GroupByLevel expects staff ordered by level.
func GroupByLevel(staff []model.Staff) []moduledto.LevelGroup {
	groups := []moduledto.LevelGroup{}
	for _, member := range staff {
		if len(groups) == 0 || groups[len(groups)-1].Level != member.Level {
			groups = append(groups, moduledto.LevelGroup{
				Level: member.Level,
				Label: LevelLabel(member.Level),
				Staff: []model.Staff{},
			})
		}
		last := &groups[len(groups)-1]
		last.Staff = append(last.Staff, member)
	}
	return groups
}

func LevelLabel(level int) string {
	if label, ok := consts.StaffLevelLabels[level]; ok {
		return label
	}
	return fmt.Sprintf("Level %d", level)
}

func (s *Service) List(ctx context.Context) ([]model.Staff, error) {
	staff, err := s.staffStore.ListAll(ctx)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memuat perangkat desa", err)
	}
	return staff, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Staff, error) {
	staff, err := s.staffStore.GetByID(ctx, id)
	if err != nil {
		return nil, asset.ServiceError(err, notFoundMessage)
	}
	return staff, nil
}

func (s *Service) Create(ctx context.Context, req moduledto.CreateStaffRequest, file *multipart.FileHeader) (*asset.Result[model.Staff], error) {
	staff := &model.Staff{
		Name:      strings.TrimSpace(req.Name),
		Position:  strings.TrimSpace(req.Position),
		Level:     req.Level,
		IsActive:  true,
		SortOrder: req.SortOrder,
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		staff.Description = &desc
	}
	if staff.Name == "" || staff.Position == "" {
		return nil, platformservice.NewValidationError("Nama dan jabatan wajib diisi")
	}
	if err := validateLevel(staff.Level); err != nil {
		return nil, err
	}

	upload, err := s.prepare(ctx, file)
	if err != nil {
		return nil, err
	}

	result, err := s.lifecycle.CreateWithAsset(ctx, staff, upload)
	if err != nil {
		return nil, asset.ServiceError(err, notFoundMessage)
	}
	return result, nil
}

func (s *Service) Update(ctx context.Context, id string, req moduledto.UpdateStaffRequest, file *multipart.FileHeader) (*asset.Result[model.Staff], error) {
	fields := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, platformservice.NewValidationError("Nama wajib diisi")
		}
		fields["name"] = name
	}
	if req.Position != nil {
		position := strings.TrimSpace(*req.Position)
		if position == "" {
			return nil, platformservice.NewValidationError("Jabatan wajib diisi")
		}
		fields["position"] = position
	}
	if req.Level != nil {
		if err := validateLevel(*req.Level); err != nil {
			return nil, err
		}
		fields["level"] = *req.Level
	}
	if req.Description != nil {
		if desc := strings.TrimSpace(*req.Description); desc != "" {
			fields["description"] = desc
		} else {
			fields["description"] = nil
		}
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
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

func (s *Service) Delete(ctx context.Context, id string) (*asset.Result[model.Staff], error) {
	result, err := s.lifecycle.DeleteWithAsset(ctx, id)
	if err != nil {
		return nil, asset.ServiceError(err, notFoundMessage)
	}
	return result, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.staffStore.Count(ctx)
}

func (s *Service) SweepTarget() asset.SweepTarget {
	return asset.SweepTarget{Bucket: s.bucket, References: s.staffStore.PhotoURLs}
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

func validateLevel(level int) error {
	if level < consts.StaffLevelMin || level > consts.StaffLevelMax {
		return platformservice.NewValidationError("Level harus antara 1 dan 5")
	}
	return nil
}
