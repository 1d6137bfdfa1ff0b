package telemetry

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mu      sync.Mutex
	batches [][]Message
	err     error
	fetched chan struct{}
}

func (p *fakeProvider) Fetch(context.Context) ([]Message, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fetched != nil {
		p.fetched <- struct{}{}
	}
	if p.err != nil {
		return nil, p.err
	}
	if len(p.batches) == 0 {
		return nil, nil
	}
	batch := p.batches[0]
	p.batches = p.batches[1:]
	return batch, nil
}

type fakeForwarder struct {
	mu       sync.Mutex
	failures int
	err      error
	calls    int
	batches  [][]Message
}

func (f *fakeForwarder) Forward(_ context.Context, batch []Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		if f.err != nil {
			return f.err
		}
		return errors.New("ingest unavailable")
	}
	f.batches = append(f.batches, batch)
	return nil
}

type memoryWatermarkStore struct {
	value int64
	found bool
	saved []int64
}

func (m *memoryWatermarkStore) Load(context.Context) (int64, bool, error) {
	return m.value, m.found, nil
}

func (m *memoryWatermarkStore) Save(_ context.Context, watermark int64) error {
	m.saved = append(m.saved, watermark)
	return nil
}

func newTestSyncService(provider Provider, forwarder Forwarder, store WatermarkStore) (*SyncService, *[]time.Duration) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	s := NewSyncService(provider, forwarder, store, logger, Options{})
	delays := make([]time.Duration, 0)
	s.sleep = func(d time.Duration) { delays = append(delays, d) }
	return s, &delays
}

func messages(timestamps ...int64) []Message {
	out := make([]Message, 0, len(timestamps))
	for _, ts := range timestamps {
		out = append(out, Message{AnimalID: "a", Timestamp: ts})
	}
	return out
}

func timestampsOf(batch []Message) []int64 {
	out := make([]int64, 0, len(batch))
	for _, m := range batch {
		out = append(out, m.Timestamp)
	}
	return out
}

func TestNewSyncService_Defaults(t *testing.T) {
	s, _ := newTestSyncService(&fakeProvider{}, &fakeForwarder{}, nil)

	assert.Equal(t, 30*time.Second, s.opts.Interval)
	assert.Equal(t, 3, s.opts.ForwardAttempts)
	assert.Equal(t, time.Second, s.opts.ForwardBaseDelay)
	assert.Equal(t, DefaultMaxBatchSize, s.opts.MaxBatchSize)
}

func TestPoll_FiltersByWatermark(t *testing.T) {
	// Подготовка
	provider := &fakeProvider{batches: [][]Message{
		messages(100, 102, 105),
		messages(101, 105, 110),
	}}
	s, _ := newTestSyncService(provider, &fakeForwarder{}, nil)
	ctx := context.Background()

	// Действие
	first := s.poll(ctx)
	second := s.poll(ctx)

	// Проверки
	assert.Equal(t, []int64{100, 102, 105}, timestampsOf(first))
	assert.Equal(t, []int64{110}, timestampsOf(second))
	assert.Equal(t, int64(110), s.Watermark())
}

func TestPoll_EmptyBatchKeepsWatermark(t *testing.T) {
	store := &memoryWatermarkStore{}
	provider := &fakeProvider{batches: [][]Message{messages(5), {}, messages(3, 5)}}
	s, _ := newTestSyncService(provider, &fakeForwarder{}, store)
	ctx := context.Background()

	s.poll(ctx)
	assert.Empty(t, s.poll(ctx))
	assert.Empty(t, s.poll(ctx))

	assert.Equal(t, int64(5), s.Watermark())
	// Сохраняется только продвижение водяного знака
	assert.Equal(t, []int64{5}, store.saved)
}

func TestPoll_ProviderFailureReturnsEmpty(t *testing.T) {
	s, _ := newTestSyncService(&fakeProvider{err: errors.New("timeout")}, &fakeForwarder{}, nil)

	batch := s.poll(context.Background())

	assert.Empty(t, batch)
	assert.Equal(t, int64(0), s.Watermark())
}

func TestForward_RetriesWithBackoff(t *testing.T) {
	forwarder := &fakeForwarder{failures: 2}
	s, delays := newTestSyncService(&fakeProvider{}, forwarder, nil)

	ok := s.forward(context.Background(), messages(1))

	assert.True(t, ok)
	assert.Equal(t, 3, forwarder.calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *delays)
}

func TestForward_DropsBatchAfterAllAttempts(t *testing.T) {
	forwarder := &fakeForwarder{failures: 100}
	s, delays := newTestSyncService(&fakeProvider{}, forwarder, nil)

	var ok bool
	assert.NotPanics(t, func() {
		ok = s.forward(context.Background(), messages(1))
	})

	assert.False(t, ok)
	assert.Equal(t, 3, forwarder.calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *delays)
	assert.Empty(t, forwarder.batches)
}

// Порция больше лимита точки приема уходит несколькими запросами
func TestTick_SplitsLargeBatch(t *testing.T) {
	// Подготовка
	timestamps := make([]int64, 0, DefaultMaxBatchSize+1)
	for ts := int64(1); ts <= DefaultMaxBatchSize+1; ts++ {
		timestamps = append(timestamps, ts)
	}
	provider := &fakeProvider{batches: [][]Message{messages(timestamps...)}}
	forwarder := &fakeForwarder{}
	s, _ := newTestSyncService(provider, forwarder, nil)

	// Действие
	s.tick(context.Background())

	// Проверки
	assert.Equal(t, 2, forwarder.calls)
	require.Len(t, forwarder.batches, 2)
	assert.Len(t, forwarder.batches[0], DefaultMaxBatchSize)
	assert.Equal(t, []int64{DefaultMaxBatchSize + 1}, timestampsOf(forwarder.batches[1]))
	assert.Equal(t, int64(DefaultMaxBatchSize+1), s.Watermark())
}

func TestTick_CustomBatchSize(t *testing.T) {
	provider := &fakeProvider{batches: [][]Message{messages(1, 2, 3, 4, 5)}}
	forwarder := &fakeForwarder{}
	s, _ := newTestSyncService(provider, forwarder, nil)
	s.opts.MaxBatchSize = 2

	s.tick(context.Background())

	require.Len(t, forwarder.batches, 3)
	assert.Equal(t, []int64{1, 2}, timestampsOf(forwarder.batches[0]))
	assert.Equal(t, []int64{3, 4}, timestampsOf(forwarder.batches[1]))
	assert.Equal(t, []int64{5}, timestampsOf(forwarder.batches[2]))
}

// Отказ по содержимому (4xx) не повторяется
func TestForward_ClientErrorIsNotRetried(t *testing.T) {
	forwarder := &fakeForwarder{failures: 100, err: &StatusError{StatusCode: 400}}
	s, delays := newTestSyncService(&fakeProvider{}, forwarder, nil)

	ok := s.forward(context.Background(), messages(1))

	assert.False(t, ok)
	assert.Equal(t, 1, forwarder.calls)
	assert.Empty(t, *delays)
}

func TestForward_TooManyRequestsIsRetried(t *testing.T) {
	forwarder := &fakeForwarder{failures: 1, err: &StatusError{StatusCode: 429}}
	s, delays := newTestSyncService(&fakeProvider{}, forwarder, nil)

	ok := s.forward(context.Background(), messages(1))

	assert.True(t, ok)
	assert.Equal(t, 2, forwarder.calls)
	assert.Equal(t, []time.Duration{time.Second}, *delays)
}

// Водяной знак можно читать, пока цикл работает
func TestWatermark_ReadWhileRunning(t *testing.T) {
	provider := &fakeProvider{batches: [][]Message{messages(7)}, fetched: make(chan struct{}, 10)}
	s, _ := newTestSyncService(provider, &fakeForwarder{}, nil)
	s.after = func(time.Duration) <-chan time.Time { return make(chan time.Time) }

	require.NoError(t, s.Start(context.Background()))
	waitSignal(t, provider.fetched)
	assert.Eventually(t, func() bool { return s.Watermark() == 7 }, 2*time.Second, 5*time.Millisecond)
	s.Stop()
}

func waitSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for sync loop")
	}
}

// Порция, которую не удалось доставить, не останавливает цикл
func TestRun_ContinuesAfterForwardFailure(t *testing.T) {
	// Подготовка
	provider := &fakeProvider{
		batches: [][]Message{messages(1), messages(2)},
		fetched: make(chan struct{}, 10),
	}
	forwarder := &fakeForwarder{failures: 3}
	store := &memoryWatermarkStore{}
	s, delays := newTestSyncService(provider, forwarder, store)

	ticks := make(chan time.Time)
	var intervals []time.Duration
	s.after = func(d time.Duration) <-chan time.Time {
		intervals = append(intervals, d)
		return ticks
	}

	// Действие
	require.NoError(t, s.Start(context.Background()))
	waitSignal(t, provider.fetched)

	// Следующий тик возможен только после завершения первого
	select {
	case ticks <- time.Now():
	case <-time.After(2 * time.Second):
		t.Fatal("sync loop did not reach the interval wait")
	}
	waitSignal(t, provider.fetched)
	s.Stop()

	// Проверки
	assert.Equal(t, 4, forwarder.calls)
	require.Len(t, forwarder.batches, 1)
	assert.Equal(t, []int64{2}, timestampsOf(forwarder.batches[0]))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *delays)
	assert.Equal(t, int64(2), s.Watermark())
	assert.Equal(t, []int64{1, 2}, store.saved)
	assert.Equal(t, 30*time.Second, intervals[0])
}

func TestStart_LoadsWatermarkAndRejectsSecondStart(t *testing.T) {
	store := &memoryWatermarkStore{value: 105, found: true}
	provider := &fakeProvider{batches: [][]Message{messages(101, 105, 110)}, fetched: make(chan struct{}, 10)}
	forwarder := &fakeForwarder{}
	s, _ := newTestSyncService(provider, forwarder, store)
	s.after = func(time.Duration) <-chan time.Time { return make(chan time.Time) }

	require.NoError(t, s.Start(context.Background()))
	assert.ErrorIs(t, s.Start(context.Background()), ErrAlreadyRunning)
	waitSignal(t, provider.fetched)
	s.Stop()
	s.Stop()

	require.Len(t, forwarder.batches, 1)
	assert.Equal(t, []int64{110}, timestampsOf(forwarder.batches[0]))
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	provider := &fakeProvider{fetched: make(chan struct{}, 10)}
	s, _ := newTestSyncService(provider, &fakeForwarder{}, nil)
	s.after = func(time.Duration) <-chan time.Time { return make(chan time.Time) }

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	waitSignal(t, provider.fetched)
	cancel()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	waitSignal(t, done)
}
