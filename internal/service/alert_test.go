package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_safety_tracker/internal/models"
	"github.com/shenikar/animal_safety_tracker/internal/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestApply_DangerZoneViolationTriggersAlert(t *testing.T) {
	// Подготовка
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	zone := newDangerZone(animalID)
	point := models.Coordinate{Latitude: 5, Longitude: 5}
	verdicts := []Verdict{{Geofence: zone, Kind: zone.Kind, Violated: true, Threshold: models.Threshold{Latitude: 5, Longitude: 5, Radius: 785}}}

	// Ожидания
	// 1. Открытого алерта нет
	deps.alerts.EXPECT().
		FindOpen(ctx, animalID, &zone.ID, models.AlertTypeDangerZone).
		Return(nil, nil).
		Times(1)

	// 2. Создание алерта в статусе triggered
	deps.alerts.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Alert) (bool, error) {
			assert.Equal(t, models.AlertStatusTriggered, a.Status)
			assert.Equal(t, models.AlertTypeDangerZone, a.AlertType)
			assert.Equal(t, zone.ID, *a.DangerZone)
			assert.Equal(t, "road", a.DangerType)
			assert.Equal(t, point, a.Location)
			assert.Equal(t, 785.0, a.Threshold.Radius)
			a.ID = uuid.New()
			return true, nil
		}).Times(1)

	// 3. Событие для хука уведомлений
	deps.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.WebhookEvent) {
			assert.Equal(t, webhook.EventAlertTriggered, event.Type)
			assert.Equal(t, animalID, event.AnimalID)
		}).Return(nil).Times(1)

	// Действие
	changed, err := deps.alertManager().Apply(ctx, animalID, point, verdicts)

	// Проверки
	require.NoError(t, err)
	require.Len(t, changed, 1)
	assert.Equal(t, models.AlertStatusTriggered, changed[0].Status)
}

func TestApply_TerritoryViolationHasNoDangerFields(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	territory := newTerritory(animalID)
	verdicts := []Verdict{{Geofence: territory, Kind: territory.Kind, Violated: true}}

	deps.alerts.EXPECT().FindOpen(ctx, animalID, &territory.ID, models.AlertTypeGeofence).Return(nil, nil)
	deps.alerts.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Alert) (bool, error) {
			assert.Equal(t, models.AlertTypeGeofence, a.AlertType)
			assert.Nil(t, a.DangerZone)
			assert.Empty(t, a.DangerType)
			assert.Equal(t, territory.ID, *a.GeofenceID)
			return true, nil
		})
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	changed, err := deps.alertManager().Apply(ctx, animalID, models.Coordinate{Latitude: 20, Longitude: 20}, verdicts)

	require.NoError(t, err)
	assert.Len(t, changed, 1)
}

// Повторная оценка незакрытого нарушения не создает второй triggered алерт
func TestApply_RepeatedViolationIsIdempotent(t *testing.T) {
	// Подготовка
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	zone := newDangerZone(animalID)
	point := models.Coordinate{Latitude: 5, Longitude: 5}
	verdicts := []Verdict{{Geofence: zone, Kind: zone.Kind, Violated: true}}
	manager := deps.alertManager()

	var stored *models.Alert

	// Ожидания
	deps.alerts.EXPECT().
		FindOpen(ctx, animalID, &zone.ID, models.AlertTypeDangerZone).
		DoAndReturn(func(context.Context, uuid.UUID, *uuid.UUID, models.AlertType) (*models.Alert, error) {
			return stored, nil
		}).Times(2)
	deps.alerts.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Alert) (bool, error) {
			a.ID = uuid.New()
			stored = a
			return true, nil
		}).Times(1)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	first, err := manager.Apply(ctx, animalID, point, verdicts)
	require.NoError(t, err)
	second, err := manager.Apply(ctx, animalID, point, verdicts)
	require.NoError(t, err)

	// Проверки
	assert.Len(t, first, 1)
	assert.Empty(t, second)
}

func TestApply_ClearedViolationResolvesAlert(t *testing.T) {
	// Подготовка
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	zone := newDangerZone(animalID)
	point := models.Coordinate{Latitude: 20, Longitude: 20}
	open := &models.Alert{ID: uuid.New(), AnimalID: animalID, Status: models.AlertStatusTriggered, GeofenceID: &zone.ID}
	verdicts := []Verdict{{Geofence: zone, Kind: zone.Kind, Violated: false}}

	// Ожидания
	deps.alerts.EXPECT().FindOpen(ctx, animalID, &zone.ID, models.AlertTypeDangerZone).Return(open, nil)
	deps.alerts.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	deps.alerts.EXPECT().
		Resolve(ctx, open.ID, point, fixedNow).
		DoAndReturn(func(_ context.Context, id uuid.UUID, _ models.Coordinate, at time.Time) (*models.Alert, error) {
			resolved := *open
			resolved.Status = models.AlertStatusResolved
			resolved.ResolvedAt = &at
			return &resolved, nil
		})
	deps.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.WebhookEvent) {
			assert.Equal(t, webhook.EventAlertResolved, event.Type)
		}).Return(nil)

	// Действие
	changed, err := deps.alertManager().Apply(ctx, animalID, point, verdicts)

	// Проверки
	require.NoError(t, err)
	require.Len(t, changed, 1)
	assert.Equal(t, models.AlertStatusResolved, changed[0].Status)
	assert.Equal(t, fixedNow, *changed[0].ResolvedAt)
}

func TestApply_NoViolationNoOpenAlert(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	territory := newTerritory(animalID)

	deps.alerts.EXPECT().FindOpen(ctx, animalID, &territory.ID, models.AlertTypeGeofence).Return(nil, nil)
	deps.alerts.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	deps.alerts.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	changed, err := deps.alertManager().Apply(ctx, animalID, models.Coordinate{Latitude: 5, Longitude: 5},
		[]Verdict{{Geofence: territory, Kind: territory.Kind, Violated: false}})

	require.NoError(t, err)
	assert.Empty(t, changed)
}

// Параллельный запрос успел открыть алерт: уникальный индекс не дал создать дубль
func TestApply_ConcurrentCreateIsSkipped(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	zone := newDangerZone(animalID)

	deps.alerts.EXPECT().FindOpen(ctx, animalID, &zone.ID, models.AlertTypeDangerZone).Return(nil, nil)
	deps.alerts.EXPECT().Create(ctx, gomock.Any()).Return(false, nil)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	changed, err := deps.alertManager().Apply(ctx, animalID, models.Coordinate{Latitude: 5, Longitude: 5},
		[]Verdict{{Geofence: zone, Kind: zone.Kind, Violated: true}})

	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestApply_PublishFailureDoesNotFailAlert(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	zone := newDangerZone(animalID)

	deps.alerts.EXPECT().FindOpen(ctx, animalID, &zone.ID, models.AlertTypeDangerZone).Return(nil, nil)
	deps.alerts.EXPECT().Create(ctx, gomock.Any()).Return(true, nil)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down"))

	changed, err := deps.alertManager().Apply(ctx, animalID, models.Coordinate{Latitude: 5, Longitude: 5},
		[]Verdict{{Geofence: zone, Kind: zone.Kind, Violated: true}})

	require.NoError(t, err)
	assert.Len(t, changed, 1)
}

func TestApply_RepositoryError(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	zone := newDangerZone(animalID)

	deps.alerts.EXPECT().FindOpen(ctx, animalID, &zone.ID, models.AlertTypeDangerZone).Return(nil, errors.New("db down"))

	_, err := deps.alertManager().Apply(ctx, animalID, models.Coordinate{},
		[]Verdict{{Geofence: zone, Kind: zone.Kind, Violated: true}})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not find open alert")
}

// Параллельный запрос уже закрыл алерт зоны A; новое нарушение зоны B все равно открывает алерт
func TestApply_ConcurrentResolveDoesNotStopOtherVerdicts(t *testing.T) {
	// Подготовка
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	zoneA := newDangerZone(animalID)
	zoneB := newDangerZone(animalID)
	point := models.Coordinate{Latitude: 5, Longitude: 5}
	openA := &models.Alert{ID: uuid.New(), AnimalID: animalID, Status: models.AlertStatusTriggered, GeofenceID: &zoneA.ID}
	verdicts := []Verdict{
		{Geofence: zoneA, Kind: zoneA.Kind, Violated: false},
		{Geofence: zoneB, Kind: zoneB.Kind, Violated: true},
	}

	// Ожидания
	// 1. Алерт зоны A закрыт другим запросом между FindOpen и Resolve
	deps.alerts.EXPECT().FindOpen(ctx, animalID, &zoneA.ID, models.AlertTypeDangerZone).Return(openA, nil)
	deps.alerts.EXPECT().
		Resolve(ctx, openA.ID, point, fixedNow).
		Return(nil, models.NewNotFoundError("alert", openA.ID.String()))

	// 2. Зона B обрабатывается как обычно
	deps.alerts.EXPECT().FindOpen(ctx, animalID, &zoneB.ID, models.AlertTypeDangerZone).Return(nil, nil)
	deps.alerts.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Alert) (bool, error) {
			assert.Equal(t, zoneB.ID, *a.GeofenceID)
			a.ID = uuid.New()
			return true, nil
		}).Times(1)

	// 3. Уведомление только о новом алерте
	deps.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.WebhookEvent) {
			assert.Equal(t, webhook.EventAlertTriggered, event.Type)
		}).Return(nil).Times(1)

	// Действие
	changed, err := deps.alertManager().Apply(ctx, animalID, point, verdicts)

	// Проверки
	require.NoError(t, err)
	require.Len(t, changed, 1)
	assert.Equal(t, zoneB.ID, *changed[0].GeofenceID)
}

// Сбой хранилища по одной геозоне не мешает обработать остальные
func TestApply_FailedVerdictDoesNotStopOthers(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	zoneA := newDangerZone(animalID)
	zoneB := newDangerZone(animalID)
	verdicts := []Verdict{
		{Geofence: zoneA, Kind: zoneA.Kind, Violated: true},
		{Geofence: zoneB, Kind: zoneB.Kind, Violated: true},
	}

	deps.alerts.EXPECT().FindOpen(ctx, animalID, &zoneA.ID, models.AlertTypeDangerZone).Return(nil, errors.New("db down"))
	deps.alerts.EXPECT().FindOpen(ctx, animalID, &zoneB.ID, models.AlertTypeDangerZone).Return(nil, nil)
	deps.alerts.EXPECT().Create(ctx, gomock.Any()).Return(true, nil).Times(1)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	changed, err := deps.alertManager().Apply(ctx, animalID, models.Coordinate{Latitude: 5, Longitude: 5}, verdicts)

	assert.ErrorContains(t, err, "could not find open alert")
	assert.Len(t, changed, 1)
}

func TestApplySpeed(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	manager := deps.alertManager()

	// Без вердикта ничего не происходит
	alert, err := manager.ApplySpeed(ctx, animalID, models.Coordinate{}, nil)
	require.NoError(t, err)
	assert.Nil(t, alert)

	deps.alerts.EXPECT().FindOpen(ctx, animalID, (*uuid.UUID)(nil), models.AlertTypeSpeed).Return(nil, nil)
	deps.alerts.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Alert) (bool, error) {
			assert.Equal(t, models.AlertTypeSpeed, a.AlertType)
			assert.Nil(t, a.GeofenceID)
			assert.Contains(t, a.Description, "exceeds limit")
			return true, nil
		})
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	alert, err = manager.ApplySpeed(ctx, animalID, models.Coordinate{Latitude: 1, Longitude: 1},
		&SpeedVerdict{SpeedKmh: 90, LimitKmh: 60, Violated: true})

	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, models.AlertStatusTriggered, alert.Status)
}

func TestListAlerts(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	ownerID := uuid.New()
	animal := &models.Animal{ID: uuid.New(), OwnerID: ownerID}
	expected := []*models.Alert{{ID: uuid.New(), AnimalID: animal.ID}}

	deps.animals.EXPECT().GetByID(ctx, animal.ID).Return(animal, nil).Times(2)
	deps.alerts.EXPECT().ListByAnimal(ctx, animal.ID, models.AlertStatusTriggered).Return(expected, nil)

	alerts, err := deps.alertManager().ListAlerts(ctx, models.Actor{UserID: ownerID, Role: models.RoleUser}, animal.ID, models.AlertStatusTriggered)
	require.NoError(t, err)
	assert.Equal(t, expected, alerts)

	_, err = deps.alertManager().ListAlerts(ctx, models.Actor{UserID: uuid.New(), Role: models.RoleUser}, animal.ID, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrForbidden)
}
