package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_safety_tracker/internal/models"
	"github.com/shenikar/animal_safety_tracker/internal/service/mocks"
	webhook_mocks "github.com/shenikar/animal_safety_tracker/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	animals   *mocks.MockAnimalRepository
	locations *mocks.MockLocationRepository
	geofences *mocks.MockGeofenceRepository
	alerts    *mocks.MockAlertRepository
	publisher *webhook_mocks.MockWebhookPublisher
	logger    *logrus.Logger
}

// newTestDeps - вспомогательная функция, создающая моки всех репозиториев
func newTestDeps(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return &testDeps{
		animals:   mocks.NewMockAnimalRepository(ctrl),
		locations: mocks.NewMockLocationRepository(ctrl),
		geofences: mocks.NewMockGeofenceRepository(ctrl),
		alerts:    mocks.NewMockAlertRepository(ctrl),
		publisher: webhook_mocks.NewMockWebhookPublisher(ctrl),
		logger:    logger,
	}
}

func (d *testDeps) evaluator() *GeofenceEvaluator {
	return NewGeofenceEvaluator(d.geofences, d.logger, 60)
}

func (d *testDeps) alertManager() *AlertManager {
	m := NewAlertManager(d.alerts, d.animals, d.publisher, d.logger)
	m.now = func() time.Time { return fixedNow }
	return m
}

func squareCoordinates() []models.Coordinate {
	return []models.Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 10},
		{Latitude: 10, Longitude: 10},
		{Latitude: 10, Longitude: 0},
	}
}

func newDangerZone(animalID uuid.UUID) *models.Geofence {
	return &models.Geofence{
		ID:          uuid.New(),
		Kind:        models.KindDangerZone,
		Name:        "Трасса",
		Coordinates: squareCoordinates(),
		AnimalID:    animalID,
		Danger:      &models.DangerZoneDetails{DangerType: "road"},
	}
}

func newTerritory(animalID uuid.UUID) *models.Geofence {
	return &models.Geofence{
		ID:          uuid.New(),
		Kind:        models.KindTerritory,
		Name:        "Двор",
		Coordinates: squareCoordinates(),
		AnimalID:    animalID,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func gomockAnyGeofences() gomock.Matcher {
	return gomock.AssignableToTypeOf([]*models.Geofence{})
}
