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
	"go.uber.org/mock/gomock"
)

func (d *testDeps) locationService() *locationService {
	s := NewLocationService(d.locations, d.animals, d.evaluator(), d.alertManager(), d.logger).(*locationService)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestIngest_Validation(t *testing.T) {
	validID := uuid.New().String()

	testCases := []struct {
		name  string
		input models.LocationInput
		field string
	}{
		{"missing animal id", models.LocationInput{Latitude: ptr(1.0), Longitude: ptr(1.0)}, "animal_id"},
		{"malformed animal id", models.LocationInput{AnimalID: "not-a-uuid", Latitude: ptr(1.0), Longitude: ptr(1.0)}, "animal_id"},
		{"missing latitude", models.LocationInput{AnimalID: validID, Longitude: ptr(1.0)}, "latitude"},
		{"missing longitude", models.LocationInput{AnimalID: validID, Latitude: ptr(1.0)}, "longitude"},
		{"latitude out of range", models.LocationInput{AnimalID: validID, Latitude: ptr(91.0), Longitude: ptr(1.0)}, "latitude"},
		{"longitude out of range", models.LocationInput{AnimalID: validID, Latitude: ptr(1.0), Longitude: ptr(-181.0)}, "longitude"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Подготовка: ни один репозиторий не должен вызываться
			deps := newTestDeps(t)

			// Действие
			result, err := deps.locationService().Ingest(context.Background(), tc.input)

			// Проверки
			require.Error(t, err)
			assert.Nil(t, result)
			var fieldErr *models.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}
}

func TestIngest_UnknownAnimal(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	id := uuid.New()

	deps.animals.EXPECT().GetByID(ctx, id).Return(nil, models.NewNotFoundError("animal", id.String()))
	deps.locations.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := deps.locationService().Ingest(ctx, models.LocationInput{AnimalID: id.String(), Latitude: ptr(1.0), Longitude: ptr(1.0)})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIngest_EnteringDangerZoneTriggersAlert(t *testing.T) {
	// Подготовка
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	zone := newDangerZone(animalID)

	// Ожидания
	// 1. Животное существует
	deps.animals.EXPECT().GetByID(ctx, animalID).Return(&models.Animal{ID: animalID}, nil)

	// 2. Предыдущей точки нет, скорость не считается
	deps.locations.EXPECT().GetLatest(ctx, animalID).Return(nil, nil)

	// 3. Сохранение точки с серверным временем
	deps.locations.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, l *models.Location) error {
			assert.Equal(t, fixedNow, l.Timestamp)
			assert.Equal(t, 5.0, l.Latitude)
			l.ID = uuid.New()
			return nil
		})

	// 4. Оценка по геозонам из кеша и открытие алерта
	deps.geofences.EXPECT().GetAnimalGeofencesFromCache(ctx, animalID).Return([]*models.Geofence{zone}, nil)
	deps.alerts.EXPECT().FindOpen(ctx, animalID, &zone.ID, models.AlertTypeDangerZone).Return(nil, nil)
	deps.alerts.EXPECT().Create(ctx, gomock.Any()).Return(true, nil)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	result, err := deps.locationService().Ingest(ctx, models.LocationInput{AnimalID: animalID.String(), Latitude: ptr(5.0), Longitude: ptr(5.0)})

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, result.Location)
	assert.NotEqual(t, uuid.Nil, result.Location.ID)
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, models.AlertTypeDangerZone, result.Alerts[0].AlertType)
}

// Ошибка оценки не отменяет сохранение точки
func TestIngest_EvaluationFailureKeepsLocation(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	reported := fixedNow.Add(-time.Minute)

	deps.animals.EXPECT().GetByID(ctx, animalID).Return(&models.Animal{ID: animalID}, nil)
	deps.locations.EXPECT().GetLatest(ctx, animalID).Return(nil, errors.New("db hiccup"))
	deps.locations.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, l *models.Location) error {
			assert.Equal(t, reported, l.Timestamp)
			return nil
		})
	deps.geofences.EXPECT().GetAnimalGeofencesFromCache(ctx, animalID).Return(nil, nil)
	deps.geofences.EXPECT().ListByAnimal(ctx, animalID).Return(nil, errors.New("db down"))

	result, err := deps.locationService().Ingest(ctx, models.LocationInput{
		AnimalID:  animalID.String(),
		Latitude:  ptr(0.0),
		Longitude: ptr(0.0),
		Timestamp: &reported,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Alerts)
	assert.Equal(t, 0.0, result.Location.Latitude)
}

func TestIngest_SpeedAlert(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()
	prev := &models.Location{AnimalID: animalID, Latitude: 52.52, Longitude: 13.405, Timestamp: fixedNow.Add(-5 * time.Minute)}

	deps.animals.EXPECT().GetByID(ctx, animalID).Return(&models.Animal{ID: animalID}, nil)
	deps.locations.EXPECT().GetLatest(ctx, animalID).Return(prev, nil)
	deps.locations.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	deps.geofences.EXPECT().GetAnimalGeofencesFromCache(ctx, animalID).Return([]*models.Geofence{}, nil)
	deps.alerts.EXPECT().FindOpen(ctx, animalID, (*uuid.UUID)(nil), models.AlertTypeSpeed).Return(nil, nil)
	deps.alerts.EXPECT().Create(ctx, gomock.Any()).Return(true, nil)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// ~11 км за 5 минут
	result, err := deps.locationService().Ingest(ctx, models.LocationInput{AnimalID: animalID.String(), Latitude: ptr(52.62), Longitude: ptr(13.405)})

	require.NoError(t, err)
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, models.AlertTypeSpeed, result.Alerts[0].AlertType)
}

func TestIngest_SaveError(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	animalID := uuid.New()

	deps.animals.EXPECT().GetByID(ctx, animalID).Return(&models.Animal{ID: animalID}, nil)
	deps.locations.EXPECT().GetLatest(ctx, animalID).Return(nil, nil)
	deps.locations.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

	_, err := deps.locationService().Ingest(ctx, models.LocationInput{AnimalID: animalID.String(), Latitude: ptr(1.0), Longitude: ptr(1.0)})

	assert.ErrorContains(t, err, "could not save location")
}

func TestHistory(t *testing.T) {
	ownerID := uuid.New()
	animal := &models.Animal{ID: uuid.New(), OwnerID: ownerID}

	t.Run("owner gets clamped limit", func(t *testing.T) {
		deps := newTestDeps(t)
		ctx := context.Background()
		expected := []*models.Location{{ID: uuid.New(), AnimalID: animal.ID}}

		deps.animals.EXPECT().GetByID(ctx, animal.ID).Return(animal, nil)
		deps.locations.EXPECT().ListByAnimal(ctx, animal.ID, maxHistoryLimit).Return(expected, nil)

		locations, err := deps.locationService().History(ctx, models.Actor{UserID: ownerID, Role: models.RoleUser}, animal.ID, 5000)

		require.NoError(t, err)
		assert.Equal(t, expected, locations)
	})

	t.Run("default limit", func(t *testing.T) {
		deps := newTestDeps(t)
		ctx := context.Background()

		deps.animals.EXPECT().GetByID(ctx, animal.ID).Return(animal, nil)
		deps.locations.EXPECT().ListByAnimal(ctx, animal.ID, defaultHistoryLimit).Return(nil, nil)

		_, err := deps.locationService().History(ctx, models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}, animal.ID, 0)

		require.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		deps := newTestDeps(t)
		ctx := context.Background()

		deps.animals.EXPECT().GetByID(ctx, animal.ID).Return(animal, nil)
		deps.locations.EXPECT().ListByAnimal(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.locationService().History(ctx, models.Actor{UserID: uuid.New(), Role: models.RoleUser}, animal.ID, 10)

		assert.ErrorIs(t, err, models.ErrForbidden)
	})
}
