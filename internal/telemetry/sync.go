// Package telemetry переносит показания внешнего GPS-провайдера в точку приема локаций.
package telemetry

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Message - одно показание трекера в формате провайдера (timestamp в unix-секундах)
type Message struct {
	AnimalID  string  `json:"animal_id"`
	Timestamp int64   `json:"timestamp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Provider отдает очередную порцию показаний. Отсутствие новых показаний - не ошибка.
type Provider interface {
	Fetch(ctx context.Context) ([]Message, error)
}

// Forwarder отправляет порцию показаний в точку приема
type Forwarder interface {
	Forward(ctx context.Context, batch []Message) error
}

// WatermarkStore хранит водяной знак между перезапусками
type WatermarkStore interface {
	Load(ctx context.Context) (watermark int64, found bool, err error)
	Save(ctx context.Context, watermark int64) error
}

var ErrAlreadyRunning = errors.New("telemetry: sync service is already running")

// DefaultMaxBatchSize совпадает с лимитом пакета в точке приема
const DefaultMaxBatchSize = 1000

// Options - параметры цикла синхронизации
type Options struct {
	Interval         time.Duration
	ForwardAttempts  int
	ForwardBaseDelay time.Duration
	// MaxBatchSize - максимальный размер одного запроса к точке приема
	MaxBatchSize int
}

// SyncService - единственный последовательный цикл poll -> forward -> sleep.
// Тики не пересекаются, остановка наблюдается только между тиками.
type SyncService struct {
	provider  Provider
	forwarder Forwarder
	store     WatermarkStore
	logger    *logrus.Logger
	opts      Options

	// watermark пишется только внутри тика, читать можно в любой момент
	watermark atomic.Int64

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}

	sleep func(time.Duration)
	after func(time.Duration) <-chan time.Time
}

// NewSyncService создает сервис синхронизации. store может быть nil, тогда водяной знак живет только в памяти.
func NewSyncService(provider Provider, forwarder Forwarder, store WatermarkStore, logger *logrus.Logger, opts Options) *SyncService {
	if opts.Interval <= 0 {
		opts.Interval = 30 * time.Second
	}
	if opts.ForwardAttempts < 1 {
		opts.ForwardAttempts = 3
	}
	if opts.ForwardBaseDelay <= 0 {
		opts.ForwardBaseDelay = time.Second
	}
	if opts.MaxBatchSize < 1 {
		opts.MaxBatchSize = DefaultMaxBatchSize
	}
	return &SyncService{
		provider:  provider,
		forwarder: forwarder,
		store:     store,
		logger:    logger,
		opts:      opts,
		sleep:     time.Sleep,
		after:     time.After,
	}
}

// Start поднимает водяной знак из хранилища и запускает цикл в отдельной горутине
func (s *SyncService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	if s.store != nil {
		watermark, found, err := s.store.Load(ctx)
		if err != nil {
			s.logger.WithError(err).Warn("Failed to load sync watermark, starting from in-memory value")
		} else if found {
			s.watermark.Store(watermark)
		}
	}

	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	s.logger.WithFields(logrus.Fields{
		"interval":  s.opts.Interval,
		"watermark": s.watermark.Load(),
	}).Info("Starting telemetry sync loop...")

	go s.run(ctx, s.stop, s.done)
	return nil
}

// Stop просит цикл остановиться и ждет завершения текущего тика
func (s *SyncService) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done
	s.logger.Info("Telemetry sync loop stopped")
}

// Watermark возвращает максимальный timestamp уже полученных показаний
func (s *SyncService) Watermark() int64 {
	return s.watermark.Load()
}

func (s *SyncService) run(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	// Отмена ctx не прерывает начатый тик, сетевые вызовы ограничены таймаутом клиента
	tickCtx := context.WithoutCancel(ctx)
	for {
		s.tick(tickCtx)

		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-s.after(s.opts.Interval):
		}
	}
}

func (s *SyncService) tick(ctx context.Context) {
	batch := s.poll(ctx)
	// Точка приема отклоняет пакеты больше лимита целиком, поэтому порция режется на части
	for start := 0; start < len(batch); start += s.opts.MaxBatchSize {
		end := min(start+s.opts.MaxBatchSize, len(batch))
		s.forward(ctx, batch[start:end])
	}
}

// poll забирает показания и отбрасывает все, что не новее водяного знака.
// Ошибка провайдера логируется, повтор будет на следующем тике.
func (s *SyncService) poll(ctx context.Context) []Message {
	log := s.logger.WithFields(logrus.Fields{
		"service": "telemetry",
		"method":  "poll",
	})

	messages, err := s.provider.Fetch(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch telemetry from provider")
		return nil
	}

	watermark := s.watermark.Load()
	fresh := make([]Message, 0, len(messages))
	maxTimestamp := watermark
	for _, m := range messages {
		if m.Timestamp <= watermark {
			continue
		}
		fresh = append(fresh, m)
		if m.Timestamp > maxTimestamp {
			maxTimestamp = m.Timestamp
		}
	}

	if len(fresh) == 0 {
		log.WithField("received", len(messages)).Debug("No new telemetry")
		return fresh
	}

	s.watermark.Store(maxTimestamp)
	if s.store != nil {
		if err := s.store.Save(ctx, maxTimestamp); err != nil {
			log.WithError(err).Warn("Failed to persist sync watermark")
		}
	}

	log.WithFields(logrus.Fields{
		"received":  len(messages),
		"fresh":     len(fresh),
		"watermark": maxTimestamp,
	}).Info("Polled telemetry")
	return fresh
}

// forward отправляет порцию с экспоненциальной задержкой между попытками.
// После последней неудачной попытки порция отбрасывается: доставка не более одного раза.
func (s *SyncService) forward(ctx context.Context, batch []Message) bool {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "telemetry",
		"method":     "forward",
		"batch_size": len(batch),
	})

	delay := s.opts.ForwardBaseDelay
	for attempt := 1; attempt <= s.opts.ForwardAttempts; attempt++ {
		err := s.forwarder.Forward(ctx, batch)
		if err == nil {
			log.WithField("attempt", attempt).Info("Telemetry batch forwarded")
			return true
		}

		log.WithError(err).WithField("attempt", attempt).Warn("Failed to forward telemetry batch")

		// Отказ точки приема по содержимому повторится на каждой попытке
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Permanent() {
			break
		}
		if attempt < s.opts.ForwardAttempts {
			s.sleep(delay)
			delay *= 2
		}
	}

	log.Error("Dropping undeliverable telemetry batch")
	return false
}
