package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_safety_tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_FromCache(t *testing.T) {
	// Подготовка
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	zone := newDangerZone(animalID)
	territory := newTerritory(animalID)

	// Ожидания
	deps.geofences.EXPECT().
		GetAnimalGeofencesFromCache(ctx, animalID).
		Return([]*models.Geofence{zone, territory}, nil).
		Times(1)
	deps.geofences.EXPECT().ListByAnimal(ctx, animalID).Times(0)

	// Действие
	verdicts, err := deps.evaluator().Evaluate(ctx, animalID, models.Coordinate{Latitude: 5, Longitude: 5})

	// Проверки
	require.NoError(t, err)
	require.Len(t, verdicts, 2)
	assert.Equal(t, models.KindDangerZone, verdicts[0].Kind)
	assert.True(t, verdicts[0].Violated, "точка внутри опасной зоны - нарушение")
	assert.Equal(t, models.KindTerritory, verdicts[1].Kind)
	assert.False(t, verdicts[1].Violated, "точка внутри территории - не нарушение")
}

func TestEvaluate_OutsideAllZones(t *testing.T) {
	// Подготовка
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	zone := newDangerZone(animalID)
	territory := newTerritory(animalID)

	// Ожидания
	deps.geofences.EXPECT().GetAnimalGeofencesFromCache(ctx, animalID).Return([]*models.Geofence{zone, territory}, nil)

	// Действие
	verdicts, err := deps.evaluator().Evaluate(ctx, animalID, models.Coordinate{Latitude: 15, Longitude: 15})

	// Проверки
	require.NoError(t, err)
	require.Len(t, verdicts, 2)
	assert.False(t, verdicts[0].Violated)
	assert.True(t, verdicts[1].Violated, "точка вне территории - нарушение")
	assert.InDelta(t, 5, verdicts[1].Threshold.Latitude, 1e-9)
	assert.Greater(t, verdicts[1].Threshold.Radius, 0.0)
}

func TestEvaluate_CacheMissLoadsFromDB(t *testing.T) {
	// Подготовка
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	geofences := []*models.Geofence{newTerritory(animalID)}

	// Ожидания
	// 1. Промах кеша
	deps.geofences.EXPECT().GetAnimalGeofencesFromCache(ctx, animalID).Return(nil, nil)
	// 2. Попадание в БД
	deps.geofences.EXPECT().ListByAnimal(ctx, animalID).Return(geofences, nil)
	// 3. Запись в кеш
	deps.geofences.EXPECT().SetAnimalGeofencesCache(ctx, animalID, geofences).Return(nil)

	// Действие
	verdicts, err := deps.evaluator().Evaluate(ctx, animalID, models.Coordinate{Latitude: 1, Longitude: 1})

	// Проверки
	require.NoError(t, err)
	require.Len(t, verdicts, 1)
	assert.False(t, verdicts[0].Violated)
}

func TestEvaluate_CacheErrorFallsBackToDB(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()

	deps.geofences.EXPECT().GetAnimalGeofencesFromCache(ctx, animalID).Return(nil, errors.New("redis down"))
	deps.geofences.EXPECT().ListByAnimal(ctx, animalID).Return([]*models.Geofence{}, nil)
	deps.geofences.EXPECT().SetAnimalGeofencesCache(ctx, animalID, gomockAnyGeofences()).Return(errors.New("redis down"))

	verdicts, err := deps.evaluator().Evaluate(ctx, animalID, models.Coordinate{Latitude: 1, Longitude: 1})

	require.NoError(t, err)
	assert.Empty(t, verdicts)
}

func TestEvaluate_UnknownAnimalGivesNoVerdicts(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()

	deps.geofences.EXPECT().GetAnimalGeofencesFromCache(ctx, animalID).Return(nil, nil)
	deps.geofences.EXPECT().ListByAnimal(ctx, animalID).Return([]*models.Geofence{}, nil)
	deps.geofences.EXPECT().SetAnimalGeofencesCache(ctx, animalID, gomockAnyGeofences()).Return(nil)

	verdicts, err := deps.evaluator().Evaluate(ctx, animalID, models.Coordinate{Latitude: 1, Longitude: 1})

	require.NoError(t, err)
	assert.Empty(t, verdicts)
}

func TestEvaluate_DegeneratePolygonIsNeverInside(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	zone := newDangerZone(animalID)
	zone.Coordinates = zone.Coordinates[:2]

	deps.geofences.EXPECT().GetAnimalGeofencesFromCache(ctx, animalID).Return([]*models.Geofence{zone}, nil)

	verdicts, err := deps.evaluator().Evaluate(ctx, animalID, models.Coordinate{Latitude: 0, Longitude: 5})

	require.NoError(t, err)
	require.Len(t, verdicts, 1)
	assert.False(t, verdicts[0].Violated)
}

func TestEvaluate_RepositoryError(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()

	deps.geofences.EXPECT().GetAnimalGeofencesFromCache(ctx, animalID).Return(nil, nil)
	deps.geofences.EXPECT().ListByAnimal(ctx, animalID).Return(nil, errors.New("connection refused"))

	verdicts, err := deps.evaluator().Evaluate(ctx, animalID, models.Coordinate{})

	require.Error(t, err)
	assert.Nil(t, verdicts)
	assert.ErrorContains(t, err, "could not load geofences")
}

func TestEvaluateSpeed(t *testing.T) {
	e := newTestDeps(t).evaluator()
	animalID := uuid.New()
	prev := &models.Location{AnimalID: animalID, Latitude: 52.52, Longitude: 13.405, Timestamp: fixedNow}

	// ~1.1 км за 10 минут - около 6.7 км/ч
	slow := &models.Location{AnimalID: animalID, Latitude: 52.53, Longitude: 13.405, Timestamp: fixedNow.Add(10 * time.Minute)}
	v := e.EvaluateSpeed(prev, slow)
	require.NotNil(t, v)
	assert.False(t, v.Violated)
	assert.InDelta(t, 6.7, v.SpeedKmh, 0.2)

	// ~11 км за 5 минут - больше 60 км/ч
	fast := &models.Location{AnimalID: animalID, Latitude: 52.62, Longitude: 13.405, Timestamp: fixedNow.Add(5 * time.Minute)}
	v = e.EvaluateSpeed(prev, fast)
	require.NotNil(t, v)
	assert.True(t, v.Violated)
	assert.Equal(t, 60.0, v.LimitKmh)

	assert.Nil(t, e.EvaluateSpeed(nil, fast))
	assert.Nil(t, e.EvaluateSpeed(fast, prev), "точка из прошлого не дает вердикта")
}
