package middleware

import (
	"testing"

	"karondoran-server/internal/model"
	settingsrepo "karondoran-server/internal/modules/settings/repo"
	"karondoran-server/internal/platform/service"
	"karondoran-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *service.AppService

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = service.NewAppService(settingStore)
	testService.ClearCache()
	return gdb
}

func setSetting(t *testing.T, gdb *gorm.DB, key, value string) {
	t.Helper()
	var setting model.Setting
	err := gdb.Where(model.Setting{Key: key}).Assign(model.Setting{Value: value}).FirstOrCreate(&setting).Error
	if err != nil {
		t.Fatalf("set setting %s: %v", key, err)
	}
	testService.ClearCache()
}

func resetStatusCache() {
	statusCache.Range(func(key, value any) bool {
		statusCache.Delete(key)
		return true
	})
}
