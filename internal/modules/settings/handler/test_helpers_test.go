package handler

import (
	"testing"

	modulerepo "karondoran-server/internal/modules/settings/repo"
	settingsservice "karondoran-server/internal/modules/settings/service"
	platformservice "karondoran-server/internal/platform/service"
	"karondoran-server/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService *platformservice.AppService
	testHandler *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := modulerepo.NewSettingRepository(gdb)
	testService = platformservice.NewAppService(settingStore)
	testHandler = New(settingsservice.New(testService, settingStore))
	testService.ClearCache()
	return gdb
}
