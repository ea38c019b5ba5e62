package service

import (
	"testing"

	modulerepo "karondoran-server/internal/modules/settings/repo"
	platformservice "karondoran-server/internal/platform/service"
	"karondoran-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := modulerepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService = New(appService, settingStore)
	testService.ClearCache()
	return gdb
}
