package database

import (
	"context"
	"fmt"
	"log"

	"healthai-service/internal/app/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when Redis is disabled or unreachable. Callers
// treat a nil client as "no cache" rather than refusing to start.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	if !driverConfig.Redis.Enabled {
		log.Println("Redis is disabled, summary caching is off")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	_, err := rdb.Ping(context.Background()).Result()
	if err != nil {
		log.Printf("Could not connect to Redis, summary caching is off: %v", err)
		return nil
	}

	log.Println("Successfully connected to Redis")
	return rdb
}
