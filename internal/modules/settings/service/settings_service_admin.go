package service

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"karondoran-server/internal/consts"
	"karondoran-server/internal/model"
	moduledto "karondoran-server/internal/modules/settings/dto"
	settingsrepo "karondoran-server/internal/modules/settings/repo"
	platformservice "karondoran-server/internal/platform/service"
	"karondoran-server/internal/utils"
)

// AdminListSettings returns every setting in definition order with sensitive
// values masked.
func (s *Service) AdminListSettings() ([]model.Setting, error) {
	settings, err := s.settingStore.FindAll()
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memuat pengaturan", err)
	}

	sortSettingsForAdmin(settings)
	maskSensitiveSettings(settings)
	return settings, nil
}

// GetAllAsObject returns the settings as a key to value object.
func (s *Service) GetAllAsObject() (map[string]string, error) {
	settings, err := s.AdminListSettings()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(settings))
	for _, setting := range settings {
		out[setting.Key] = setting.Value
	}
	return out, nil
}

// AdminUpdateSettings applies each item independently. Invalid values and
// write failures are reported per key and never stop the remaining keys.
func (s *Service) AdminUpdateSettings(items []moduledto.UpdateSettingRequest) (*moduledto.BatchUpdateResponse, error) {
	if len(items) == 0 {
		return nil, platformservice.NewValidationError("Tidak ada pengaturan yang diperbarui")
	}

	resp := &moduledto.BatchUpdateResponse{Updated: []string{}, Failed: []moduledto.SettingFailure{}}
	repoItems := make([]settingsrepo.UpdateSettingItem, 0, len(items))
	for _, item := range items {
		key := strings.TrimSpace(item.Key)
		if err := validateSettingUpdate(key, item.Value); err != nil {
			resp.Failed = append(resp.Failed, moduledto.SettingFailure{Key: key, Error: err.Error()})
			continue
		}
		repoItems = append(repoItems, settingsrepo.UpdateSettingItem{Key: key, Value: strings.TrimSpace(item.Value)})
	}

	if len(repoItems) > 0 {
		applied, failures := s.settingStore.UpdateSettings(repoItems, maskedSettingValue)
		resp.Updated = append(resp.Updated, applied...)
		for _, failure := range failures {
			log.Printf("⚠️ failed to update setting %s: %v", failure.Key, failure.Err)
			resp.Failed = append(resp.Failed, moduledto.SettingFailure{Key: failure.Key, Error: "Gagal menyimpan pengaturan"})
		}
		s.ClearCache()
	}
	return resp, nil
}

var (
	boolSettings = map[string]bool{
		consts.ConfigAutoActivateRegistrations: true,
		consts.ConfigRateLimitEnabled:          true,
	}
	positiveIntSettings = map[string]bool{
		consts.ConfigMaxUploadSize:      true,
		consts.ConfigMaxRequestBodySize: true,
		consts.ConfigRateLimitAuthBurst: true,
	}
)

func validateSettingUpdate(key, value string) error {
	if key == "" {
		return errors.New("Kunci pengaturan wajib diisi")
	}
	if _, ok := defaultSettingOrderByKey[key]; !ok {
		return fmt.Errorf("Pengaturan %s tidak dikenal", key)
	}
	value = strings.TrimSpace(value)

	switch {
	case boolSettings[key]:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("Nilai %s harus true atau false", key)
		}
	case positiveIntSettings[key]:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("Nilai %s harus bilangan bulat positif", key)
		}
	case key == consts.ConfigRateLimitAuthRPS:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("Nilai %s harus angka positif", key)
		}
	case key == consts.ConfigAllowFileExtensions:
		for _, ext := range strings.Split(value, ",") {
			if ext = strings.TrimSpace(ext); !strings.HasPrefix(ext, ".") || len(ext) < 2 {
				return errors.New("Ekstensi harus diawali titik, contoh .jpg")
			}
		}
	case key == consts.ConfigContactEmail:
		if value != "" {
			if ok, msg := utils.ValidateEmail(value); !ok {
				return errors.New(msg)
			}
		}
	case key == consts.ConfigSiteName:
		if value == "" {
			return errors.New("Nama situs wajib diisi")
		}
	}
	return nil
}
