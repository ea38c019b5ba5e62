package service

import (
	"testing"

	"karondoran-server/internal/config"
	settingsrepo "karondoran-server/internal/modules/settings/repo"
	"karondoran-server/internal/platform/imaging"
	platformservice "karondoran-server/internal/platform/service"
	"karondoran-server/internal/testutils"
)

func newTestService(t *testing.T, threshold int64) *Service {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	appService.ClearCache()
	return New(appService, imaging.New(), config.UploadConfig{
		CompressThresholdBytes: threshold,
		TargetMaxBytes:         imaging.MB,
		MaxDimension:           imaging.DefaultMaxDimension,
	})
}
