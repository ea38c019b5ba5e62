package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"karondoran-server/internal/consts"
	"karondoran-server/internal/model"

	"github.com/redis/go-redis/v9"
)

const DefaultValueNotFound = "||__NOT_FOUND__||"

var DefaultSettings = []model.Setting{
	{Key: consts.ConfigSiteName, Value: "Desa Karondoran", Desc: "Site name", Category: "site"},
	{Key: consts.ConfigSiteDescription, Value: "Website resmi Desa Karondoran", Desc: "Site tagline", Category: "site"},
	{Key: consts.ConfigVillageHead, Value: "", Desc: "Current village head", Category: "site"},
	{Key: consts.ConfigContactAddress, Value: "Desa Karondoran, Minahasa Utara, Sulawesi Utara", Desc: "Office address", Category: "contact"},
	{Key: consts.ConfigContactPhone, Value: "", Desc: "Office phone", Category: "contact"},
	{Key: consts.ConfigContactEmail, Value: "", Desc: "Office email", Category: "contact"},
	{Key: consts.ConfigOfficeHours, Value: "Senin - Jumat, 08.00 - 16.00", Desc: "Office hours", Category: "contact"},
	{Key: consts.ConfigAutoActivateRegistrations, Value: "false", Desc: "Activate new admin accounts on registration (true/false)", Category: "auth"},
	{Key: consts.ConfigMaxUploadSize, Value: "10", Desc: "Maximum raw upload size (MB)", Category: "upload"},
	{Key: consts.ConfigAllowFileExtensions, Value: ".jpg,.jpeg,.png,.gif,.webp,.bmp", Desc: "Allowed upload extensions", Category: "upload"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "Enable IP rate limiting", Category: "security"},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "0.5", Desc: "Auth endpoint requests per second", Category: "security"},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "5", Desc: "Auth endpoint burst", Category: "security"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "Maximum non-upload request body (MB)", Category: "security"},
	{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=31536000", Desc: "Cache-Control header for stored images", Category: "upload"},
}

// PublicSettingKeys are the settings exposed without authentication.
var PublicSettingKeys = []string{
	consts.ConfigSiteName,
	consts.ConfigSiteDescription,
	consts.ConfigVillageHead,
	consts.ConfigContactAddress,
	consts.ConfigContactPhone,
	consts.ConfigContactEmail,
	consts.ConfigOfficeHours,
}

// InitializeSettings inserts missing defaults, refreshes their metadata and
// removes keys that are no longer defined.
func (s *AppService) InitializeSettings() error {
	if err := s.settingStore.InitializeDefaults(DefaultSettings); err != nil {
		return fmt.Errorf("initialize default settings failed: %w", err)
	}

	keys := make([]string, 0, len(DefaultSettings))
	for _, def := range DefaultSettings {
		keys = append(keys, def.Key)
	}
	if err := s.settingStore.DeleteNotInKeys(keys); err != nil {
		return fmt.Errorf("remove legacy settings failed: %w", err)
	}

	s.ClearCache()
	return nil
}

func (s *AppService) GetString(key string) string {
	if val, ok := s.settingsCache.Load(key); ok {
		if strVal, ok := val.(string); ok {
			if strVal == DefaultValueNotFound {
				return ""
			}
			return strVal
		}
		s.settingsCache.Delete(key)
	}

	if val, ok := loadSettingFromRedis(key); ok {
		s.settingsCache.Store(key, val)
		return val
	}

	setting, err := s.settingStore.FindByKey(key)
	if err != nil {
		for _, def := range DefaultSettings {
			if def.Key == key {
				newSetting := def
				// a concurrent insert of the same key only loses the race
				if createErr := s.settingStore.Create(&newSetting); createErr != nil {
					log.Printf("⚠️ Failed to persist default setting %q: %v", key, createErr)
				}
				s.storeSetting(key, newSetting.Value)
				return newSetting.Value
			}
		}

		s.settingsCache.Store(key, DefaultValueNotFound)
		return ""
	}

	s.storeSetting(key, setting.Value)
	return setting.Value
}

func (s *AppService) storeSetting(key, value string) {
	s.settingsCache.Store(key, value)

	if redisClient := GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = redisClient.HSet(ctx, RedisKey("settings"), key, value).Err()
	}
}

func loadSettingFromRedis(key string) (string, bool) {
	redisClient := GetRedisClient()
	if redisClient == nil {
		return "", false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	val, err := redisClient.HGet(ctx, RedisKey("settings"), key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("⚠️ Redis settings lookup failed for %q: %v", key, err)
		}
		return "", false
	}
	return val, true
}

func (s *AppService) GetInt(key string) int {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetInt64(key string) int64 {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}
	val, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetFloat64(key string) float64 {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetBool(key string) bool {
	valStr := s.GetString(key)
	if valStr == "" {
		return false
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false
	}
	return val
}
