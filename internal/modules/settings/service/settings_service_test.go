package service

import (
	"testing"

	"karondoran-server/internal/consts"
	"karondoran-server/internal/db"
	"karondoran-server/internal/model"
	moduledto "karondoran-server/internal/modules/settings/dto"
	platformservice "karondoran-server/internal/platform/service"
)

func settingValue(t *testing.T, key string) string {
	t.Helper()
	var s model.Setting
	if err := db.DB.Where("key = ?", key).First(&s).Error; err != nil {
		t.Fatalf("load setting %s: %v", key, err)
	}
	return s.Value
}

// Verifies sensitive values are masked in the admin list.
func TestListSettingsForAdmin_MasksSensitive(t *testing.T) {
	setupTestDB(t)

	_ = db.DB.Create(&model.Setting{Key: "k1", Value: "v1", Sensitive: false}).Error
	_ = db.DB.Create(&model.Setting{Key: "k2", Value: "secret", Sensitive: true}).Error

	settings, err := testService.GetAllAsObject()
	if err != nil {
		t.Fatalf("GetAllAsObject: %v", err)
	}
	if settings["k1"] != "v1" {
		t.Fatalf("expected k1=v1, got %q", settings["k1"])
	}
	if settings["k2"] != "**********" {
		t.Fatalf("expected sensitive value masked, got %q", settings["k2"])
	}
}

// Verifies one bad key does not stop the rest of the batch.
func TestUpdateSettingsForAdmin_PartialFailure(t *testing.T) {
	setupTestDB(t)
	if err := testService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}

	resp, err := testService.AdminUpdateSettings([]moduledto.UpdateSettingRequest{
		{Key: consts.ConfigSiteName, Value: "Desa Karondoran Baru"},
		{Key: consts.ConfigMaxUploadSize, Value: "-5"},
		{Key: "unknown_key", Value: "x"},
		{Key: consts.ConfigContactPhone, Value: "0431-123456"},
	})
	if err != nil {
		t.Fatalf("AdminUpdateSettings: %v", err)
	}
	if len(resp.Updated) != 2 || len(resp.Failed) != 2 {
		t.Fatalf("unexpected result: %+v", resp)
	}
	if settingValue(t, consts.ConfigSiteName) != "Desa Karondoran Baru" {
		t.Fatalf("expected site name to be updated")
	}
	if settingValue(t, consts.ConfigMaxUploadSize) != "10" {
		t.Fatalf("invalid value must not be written")
	}
	if testService.GetString(consts.ConfigContactPhone) != "0431-123456" {
		t.Fatalf("expected cache to be refreshed after update")
	}
}

// Verifies the masked value echoed back for a sensitive setting is ignored.
func TestUpdateSettingsForAdmin_MaskedSensitiveIsNotOverwritten(t *testing.T) {
	setupTestDB(t)
	_ = db.DB.Create(&model.Setting{Key: consts.ConfigContactEmail, Value: "desa@karondoran.id", Sensitive: true}).Error

	resp, err := testService.AdminUpdateSettings([]moduledto.UpdateSettingRequest{
		{Key: consts.ConfigContactEmail, Value: "**********"},
	})
	if err == nil && len(resp.Updated) != 0 {
		t.Fatalf("expected masked value to be skipped, got %+v", resp)
	}
	if settingValue(t, consts.ConfigContactEmail) != "desa@karondoran.id" {
		t.Fatalf("expected sensitive value preserved")
	}
}

// Verifies per-key value validation.
func TestValidateSettingUpdate(t *testing.T) {
	cases := []struct {
		key   string
		value string
		ok    bool
	}{
		{consts.ConfigRateLimitEnabled, "true", true},
		{consts.ConfigRateLimitEnabled, "ya", false},
		{consts.ConfigRateLimitAuthRPS, "0.5", true},
		{consts.ConfigRateLimitAuthRPS, "0", false},
		{consts.ConfigRateLimitAuthBurst, "5", true},
		{consts.ConfigAllowFileExtensions, ".jpg, .png", true},
		{consts.ConfigAllowFileExtensions, "jpg", false},
		{consts.ConfigContactEmail, "", true},
		{consts.ConfigContactEmail, "bukan-email", false},
		{consts.ConfigSiteName, " ", false},
		{consts.ConfigOfficeHours, "", true},
		{"", "x", false},
	}
	for _, tc := range cases {
		err := validateSettingUpdate(tc.key, tc.value)
		if (err == nil) != tc.ok {
			t.Fatalf("%s=%q: expected ok=%v, got %v", tc.key, tc.value, tc.ok, err)
		}
	}
}

// Verifies an empty batch is rejected.
func TestUpdateSettingsForAdmin_Empty(t *testing.T) {
	setupTestDB(t)

	_, err := testService.AdminUpdateSettings(nil)
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok || serviceErr.Code != platformservice.ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// Verifies the admin list follows the order settings are defined in.
func TestListSettingsForAdmin_OrderStableByDefaultSettings(t *testing.T) {
	setupTestDB(t)

	_ = db.DB.Create(&model.Setting{Key: consts.ConfigRateLimitEnabled, Value: "true", Category: "security"}).Error
	_ = db.DB.Create(&model.Setting{Key: "z_custom", Value: "1", Category: "custom"}).Error
	_ = db.DB.Create(&model.Setting{Key: consts.ConfigSiteName, Value: "Desa", Category: "site"}).Error
	_ = db.DB.Create(&model.Setting{Key: "a_custom", Value: "2", Category: "custom"}).Error

	settings, err := testService.AdminListSettings()
	if err != nil {
		t.Fatalf("AdminListSettings: %v", err)
	}
	pos := map[string]int{}
	for i, item := range settings {
		pos[item.Key] = i
	}
	if pos[consts.ConfigSiteName] >= pos[consts.ConfigRateLimitEnabled] {
		t.Fatalf("expected %s before %s", consts.ConfigSiteName, consts.ConfigRateLimitEnabled)
	}
	if pos[consts.ConfigRateLimitEnabled] >= pos["a_custom"] || pos["a_custom"] >= pos["z_custom"] {
		t.Fatalf("expected defined settings first and custom keys sorted")
	}
}

// Verifies the public web info only exposes public keys.
func TestWebInfo_PublicKeysOnly(t *testing.T) {
	setupTestDB(t)

	info := testService.WebInfo()
	if info[consts.ConfigSiteName] != "Desa Karondoran" {
		t.Fatalf("expected default site name, got %q", info[consts.ConfigSiteName])
	}
	if _, ok := info[consts.ConfigRateLimitEnabled]; ok {
		t.Fatalf("security settings must not be public")
	}
}
