package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/animal_safety_tracker/internal/geo"
	"github.com/shenikar/animal_safety_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// Verdict - результат проверки точки по одной геозоне
type Verdict struct {
	Geofence  *models.Geofence
	Kind      models.GeofenceKind
	Violated  bool
	Threshold models.Threshold
}

// SpeedVerdict - результат проверки скорости между двумя соседними точками
type SpeedVerdict struct {
	SpeedKmh  float64
	LimitKmh  float64
	Violated  bool
	Threshold models.Threshold
}

// GeofenceEvaluator проверяет точку по геозонам животного.
// Кроме чтения определений геозон состояния не меняет.
type GeofenceEvaluator struct {
	repo        GeofenceRepository
	logger      *logrus.Logger
	maxSpeedKmh float64
}

func NewGeofenceEvaluator(repo GeofenceRepository, logger *logrus.Logger, maxSpeedKmh float64) *GeofenceEvaluator {
	return &GeofenceEvaluator{
		repo:        repo,
		logger:      logger,
		maxSpeedKmh: maxSpeedKmh,
	}
}

// Evaluate возвращает вердикты по всем геозонам животного.
// Животное без геозон (в том числе неизвестное) дает пустой список.
func (e *GeofenceEvaluator) Evaluate(ctx context.Context, animalID uuid.UUID, location models.Coordinate) ([]Verdict, error) {
	geofences, err := e.loadGeofences(ctx, animalID)
	if err != nil {
		return nil, err
	}

	verdicts := make([]Verdict, 0, len(geofences))
	for _, g := range geofences {
		inside := contains(location, g.Coordinates)

		v := Verdict{
			Geofence:  g,
			Kind:      g.Kind,
			Threshold: geo.EnclosingThreshold(g.Coordinates),
		}
		switch g.Kind {
		case models.KindDangerZone:
			v.Violated = inside
		case models.KindTerritory:
			v.Violated = !inside
		default:
			continue
		}
		verdicts = append(verdicts, v)
	}
	return verdicts, nil
}

// EvaluateSpeed сравнивает скорость между предыдущей и новой точкой с лимитом.
// Без предыдущей точки или при неположительном интервале времени вердикта нет.
func (e *GeofenceEvaluator) EvaluateSpeed(prev, curr *models.Location) *SpeedVerdict {
	if prev == nil || curr == nil || e.maxSpeedKmh <= 0 {
		return nil
	}
	elapsed := curr.Timestamp.Sub(prev.Timestamp).Hours()
	if elapsed <= 0 {
		return nil
	}

	distance := geo.GreatCircleDistanceKm(prev.Latitude, prev.Longitude, curr.Latitude, curr.Longitude)
	speed := distance / elapsed
	return &SpeedVerdict{
		SpeedKmh: speed,
		LimitKmh: e.maxSpeedKmh,
		Violated: speed > e.maxSpeedKmh,
		Threshold: models.Threshold{
			Latitude:  prev.Latitude,
			Longitude: prev.Longitude,
			Radius:    distance,
		},
	}
}

// loadGeofences читает геозоны из кеша, при промахе или ошибке кеша - из БД
func (e *GeofenceEvaluator) loadGeofences(ctx context.Context, animalID uuid.UUID) ([]*models.Geofence, error) {
	log := e.logger.WithFields(logrus.Fields{
		"service":   "evaluator",
		"method":    "loadGeofences",
		"animal_id": animalID,
	})

	cached, err := e.repo.GetAnimalGeofencesFromCache(ctx, animalID)
	if err != nil {
		log.WithError(err).Warn("Failed to read geofences from cache, falling back to database")
	} else if cached != nil {
		return cached, nil
	}

	geofences, err := e.repo.ListByAnimal(ctx, animalID)
	if err != nil {
		log.WithError(err).Error("Failed to list geofences for animal")
		return nil, fmt.Errorf("service: could not load geofences: %w", err)
	}

	if err := e.repo.SetAnimalGeofencesCache(ctx, animalID, geofences); err != nil {
		log.WithError(err).Warn("Failed to cache geofences")
	}
	return geofences, nil
}

// contains отсекает точки вне ограничивающего прямоугольника до трассировки луча
func contains(point models.Coordinate, polygon []models.Coordinate) bool {
	if len(polygon) < 3 {
		return false
	}
	if !geo.Bound(polygon).Contains(geo.ToPoint(point)) {
		return false
	}
	return geo.PointInPolygon(point, polygon)
}
