package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/animal_safety_tracker/internal/telemetry"
)

const defaultWatermarkKey = "telemetry:watermark"

// WatermarkRepository хранит водяной знак синхронизации телеметрии в Redis
type WatermarkRepository struct {
	redisClient *redis.Client
	key         string
}

func NewWatermarkRepository(redisClient *redis.Client, key string) telemetry.WatermarkStore {
	if key == "" {
		key = defaultWatermarkKey
	}
	return &WatermarkRepository{
		redisClient: redisClient,
		key:         key,
	}
}

// Load возвращает сохраненный водяной знак, found=false если его еще нет
func (r *WatermarkRepository) Load(ctx context.Context) (int64, bool, error) {
	watermark, err := r.redisClient.Get(ctx, r.key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to load watermark: %w", err)
	}
	return watermark, true, nil
}

// Save сохраняет водяной знак без срока жизни
func (r *WatermarkRepository) Save(ctx context.Context, watermark int64) error {
	if err := r.redisClient.Set(ctx, r.key, watermark, 0).Err(); err != nil {
		return fmt.Errorf("failed to save watermark: %w", err)
	}
	return nil
}
