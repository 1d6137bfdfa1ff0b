package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/animal_safety_tracker/internal/models"
)

const (
	webhookQueueKey    = "webhook_events"
	deadLetterQueueKey = "webhook_events:failed"
	deadLetterLimit    = 1000
)

// EventType - тип события для внешнего хука уведомлений
type EventType string

const (
	EventAnimalLost     EventType = "animal.lost"
	EventAlertTriggered EventType = "alert.triggered"
	EventAlertResolved  EventType = "alert.resolved"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Type      EventType      `json:"type"`
	AnimalID  uuid.UUID      `json:"animal_id"`
	OwnerID   uuid.UUID      `json:"owner_id"`
	Latitude  float64        `json:"latitude,omitempty"`
	Longitude float64        `json:"longitude,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Animal    *models.Animal `json:"animal,omitempty"` // Заполняется для animal.lost
	Alert     *models.Alert  `json:"alert,omitempty"`  // Заполняется для событий алертов
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
