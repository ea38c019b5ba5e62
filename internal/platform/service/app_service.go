package service

import (
	"context"
	"sync"
	"time"

	settingsrepo "karondoran-server/internal/modules/settings/repo"
)

// AppService carries the state shared by every module: runtime settings and
// the revoked-session list.
type AppService struct {
	settingStore  settingsrepo.SettingStore
	settingsCache sync.Map
	revoked       sync.Map
}

func NewAppService(settingStore settingsrepo.SettingStore) *AppService {
	return &AppService{settingStore: settingStore}
}

// ClearCache drops every cached setting, locally and in Redis.
func (s *AppService) ClearCache() {
	s.settingsCache.Range(func(key, value any) bool {
		s.settingsCache.Delete(key)
		return true
	})

	if redisClient := GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = redisClient.Del(ctx, RedisKey("settings")).Err()
	}
}
