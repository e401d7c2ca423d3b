// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"beautyconnect/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// AuthCachePrefix keys the per-user token hash entries.
const AuthCachePrefix = "auth:"

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// StoreAuthToken records the hash of the currently issued token for a user.
// Logging in again overwrites the previous entry, invalidating older tokens.
func StoreAuthToken(ctx context.Context, userID, tokenHash string, ttl time.Duration) error {
	return GetAuthCacheClient().Set(ctx, AuthCachePrefix+userID, tokenHash, ttl).Err()
}

// CheckAuthToken reports whether the presented token hash matches the stored one.
func CheckAuthToken(ctx context.Context, userID, tokenHash string) (bool, error) {
	stored, err := GetAuthCacheClient().Get(ctx, AuthCachePrefix+userID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == tokenHash, nil
}

// RevokeAuthToken removes the stored token hash for a user (logout).
func RevokeAuthToken(ctx context.Context, userID string) error {
	return GetAuthCacheClient().Del(ctx, AuthCachePrefix+userID).Err()
}
