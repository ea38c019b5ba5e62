package service

import (
	"context"
	"testing"

	"karondoran-server/internal/consts"
	"karondoran-server/internal/model"
	moduledto "karondoran-server/internal/modules/auth/dto"
	"karondoran-server/internal/modules/auth/repo"
	settingsrepo "karondoran-server/internal/modules/settings/repo"
	platformservice "karondoran-server/internal/platform/service"
	"karondoran-server/internal/testutils"

	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	appService.ClearCache()
	return New(appService, repo.NewAdminUserRepository(gdb)), gdb
}

func setAutoActivate(t *testing.T, gdb *gorm.DB, s *Service, value string) {
	t.Helper()
	var setting model.Setting
	err := gdb.Where(model.Setting{Key: consts.ConfigAutoActivateRegistrations}).
		Assign(model.Setting{Value: value}).
		FirstOrCreate(&setting).Error
	if err != nil {
		t.Fatalf("save setting: %v", err)
	}
	s.ClearCache()
}

func mustRegister(t *testing.T, s *Service, email string) *model.AdminUser {
	t.Helper()
	user, err := s.Register(context.Background(), moduledto.RegisterRequest{
		Email:           email,
		FullName:        "Perangkat Desa",
		Password:        "rahasia123",
		ConfirmPassword: "rahasia123",
	})
	if err != nil {
		t.Fatalf("Register %s: %v", email, err)
	}
	return user
}

func assertCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok || serviceErr.Code != code {
		t.Fatalf("expected %s error, got %v", code, err)
	}
}
