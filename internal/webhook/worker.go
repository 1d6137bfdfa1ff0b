package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/animal_safety_tracker/internal/config"
	"github.com/sirupsen/logrus"
)

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	sleep       func(time.Duration)
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: time.Sleep,
	}
}

// Start запускает горутину, которая разбирает очередь событий до отмены ctx
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.WithField("queue", webhookQueueKey).Info("Starting webhook worker...")
	go func() {
		for ctx.Err() == nil {
			payload, ok := w.next(ctx)
			if !ok {
				continue
			}
			w.handle(ctx, payload)
		}
		w.logger.Info("Webhook worker stopped")
	}()
}

// next блокируется на BRPOP; false - событие не получено (ошибка или отмена)
func (w *WebhookWorker) next(ctx context.Context) (string, bool) {
	result, err := w.redisClient.BRPop(ctx, 0, webhookQueueKey).Result()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return "", false
		}
		w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
		w.sleep(w.cfg.WebhookTimeout)
		return "", false
	}
	// result[0] - ключ, result[1] - значение
	return result[1], true
}

// handle доставляет событие; недоставленные события уходят в очередь отказов
func (w *WebhookWorker) handle(ctx context.Context, payload string) {
	var event WebhookEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
		return
	}

	if w.processWebhookEvent(ctx, event, payload) || w.cfg.WebhookURL == "" {
		return
	}

	pipe := w.redisClient.TxPipeline()
	pipe.LPush(ctx, deadLetterQueueKey, payload)
	pipe.LTrim(ctx, deadLetterQueueKey, 0, deadLetterLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		w.logger.WithError(err).WithField("event_type", event.Type).Error("Failed to move webhook event to dead letter queue")
	}
}

// processWebhookEvent доставляет событие; возвращает true при успешной доставке
func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event WebhookEvent, rawPayload string) bool {
	log := w.logger.WithField("event_type", event.Type).WithField("event_animal_id", event.AnimalID)
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return false
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	baseDelay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		status, err := w.deliver(ctx, rawPayload, event.Type)
		if err == nil && status >= 200 && status < 300 {
			log.Info("Webhook delivered successfully.")
			return true
		}

		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook for event. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
		} else {
			log.Warnf("Webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", status, baseDelay, maxRetries-1-i)
		}
		if i < maxRetries-1 {
			w.sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
		}
	}

	log.Errorf("Failed to deliver webhook for event after %d retries.", maxRetries)
	return false
}

func (w *WebhookWorker) deliver(ctx context.Context, rawPayload string, eventType EventType) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Event", string(eventType))

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
