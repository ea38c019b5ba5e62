package service

import (
	"context"
	"time"
)

// RevokeToken marks a session token id as logged out until it would have
// expired anyway.
func (s *AppService) RevokeToken(tokenID string, expiresAt time.Time) {
	if tokenID == "" {
		return
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	s.revoked.Store(tokenID, expiresAt)

	if redisClient := GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = redisClient.Set(ctx, RedisKey("auth", "revoked", tokenID), "1", ttl).Err()
	}
}

func (s *AppService) IsTokenRevoked(tokenID string) bool {
	if tokenID == "" {
		return false
	}
	if val, ok := s.revoked.Load(tokenID); ok {
		if expiresAt, ok := val.(time.Time); ok && time.Now().Before(expiresAt) {
			return true
		}
		s.revoked.Delete(tokenID)
	}

	if redisClient := GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		n, err := redisClient.Exists(ctx, RedisKey("auth", "revoked", tokenID)).Result()
		return err == nil && n > 0
	}
	return false
}
