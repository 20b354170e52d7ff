package cache

import (
	"context"
	"fmt"
	"time"

	"healthai-service/internal/pkg/constvars"

	"healthai-service/internal/app/contracts"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisSummaryCache struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisSummaryCache(client *redis.Client, logger *zap.Logger) contracts.SummaryCache {
	return &redisSummaryCache{client: client, log: logger}
}

func summaryKey(patientID string, recordLimit int) string {
	return fmt.Sprintf(constvars.AISummaryCacheKeyFormat, patientID, recordLimit)
}

func (c *redisSummaryCache) Get(ctx context.Context, patientID string, recordLimit int) (string, bool) {
	value, err := c.client.Get(ctx, summaryKey(patientID, recordLimit)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.log.Warn("summary cache get failed, treating as miss",
			zap.String("patient_id", patientID),
			zap.Error(err),
		)
		return "", false
	}
	return value, true
}

func (c *redisSummaryCache) Set(ctx context.Context, patientID string, recordLimit int, summary string, ttl time.Duration) {
	err := c.client.Set(ctx, summaryKey(patientID, recordLimit), summary, ttl).Err()
	if err != nil {
		c.log.Warn("summary cache set failed",
			zap.String("patient_id", patientID),
			zap.Error(err),
		)
	}
}

func (c *redisSummaryCache) Invalidate(ctx context.Context, patientID string) {
	keys := make([]string, 0, len(constvars.AllowedAIRecordLimits))
	for _, limit := range constvars.AllowedAIRecordLimits {
		keys = append(keys, summaryKey(patientID, limit))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("summary cache invalidate failed",
			zap.String("patient_id", patientID),
			zap.Error(err),
		)
	}
}

// noopSummaryCache stands in when Redis is not configured. Every lookup
// misses and writes are discarded.
type noopSummaryCache struct{}

func NewNoopSummaryCache() contracts.SummaryCache {
	return noopSummaryCache{}
}

func (noopSummaryCache) Get(ctx context.Context, patientID string, recordLimit int) (string, bool) {
	return "", false
}

func (noopSummaryCache) Set(ctx context.Context, patientID string, recordLimit int, summary string, ttl time.Duration) {
}

func (noopSummaryCache) Invalidate(ctx context.Context, patientID string) {}
