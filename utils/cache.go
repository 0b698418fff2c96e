package utils

import (
	"context"
	"log"
	"time"

	"luxebeauty/config"

	"github.com/go-redis/redis/v8"
)

var (
	// StoreClient backs the persistent snapshots (user, bookings, favorites).
	StoreClient *redis.Client
	// SessionClient backs short-lived state (booking drafts).
	SessionClient *redis.Client
)

// InitStore initializes the Redis client for snapshot persistence.
func InitStore() {
	StoreClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStoreDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := StoreClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Store): %v", err)
	}
}

// GetStoreClient returns the snapshot store client.
func GetStoreClient() *redis.Client {
	if StoreClient == nil {
		InitStore()
	}
	return StoreClient
}

// InitSessionCache initializes the Redis client for draft sessions.
func InitSessionCache() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the draft session client.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionCache()
	}
	return SessionClient
}
