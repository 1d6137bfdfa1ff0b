package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_safety_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 1000
)

type locationService struct {
	locations LocationRepository
	animals   AnimalRepository
	evaluator *GeofenceEvaluator
	alerts    *AlertManager
	logger    *logrus.Logger
	now       func() time.Time
}

func NewLocationService(
	locations LocationRepository,
	animals AnimalRepository,
	evaluator *GeofenceEvaluator,
	alerts *AlertManager,
	logger *logrus.Logger,
) LocationService {
	return &locationService{
		locations: locations,
		animals:   animals,
		evaluator: evaluator,
		alerts:    alerts,
		logger:    logger,
		now:       time.Now,
	}
}

// Ingest проверяет и сохраняет точку, затем сразу прогоняет ее через геозоны.
// Ошибки оценки только логируются: сохраненная точка не откатывается.
func (s *locationService) Ingest(ctx context.Context, in models.LocationInput) (*models.IngestResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "location",
		"method":    "Ingest",
		"animal_id": in.AnimalID,
	})

	animalID, err := parseAnimalID(in.AnimalID)
	if err != nil {
		log.WithError(err).Warn("Rejected location with invalid animal id")
		return nil, err
	}
	if err := validatePosition(in.Latitude, in.Longitude); err != nil {
		log.WithError(err).Warn("Rejected location with invalid position")
		return nil, err
	}

	if _, err := s.animals.GetByID(ctx, animalID); err != nil {
		log.WithError(err).Warn("Location for unknown animal")
		return nil, fmt.Errorf("service: could not get animal: %w", err)
	}

	location := &models.Location{
		AnimalID:  animalID,
		Latitude:  *in.Latitude,
		Longitude: *in.Longitude,
		Timestamp: s.now(),
	}
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		location.Timestamp = *in.Timestamp
	}

	prev, err := s.locations.GetLatest(ctx, animalID)
	if err != nil {
		log.WithError(err).Warn("Failed to get previous location, speed check skipped")
		prev = nil
	}

	if err := s.locations.Create(ctx, location); err != nil {
		log.WithError(err).Error("Failed to save location in repository")
		return nil, fmt.Errorf("service: could not save location: %w", err)
	}
	log.WithField("location_id", location.ID).Debug("Location saved")

	return &models.IngestResult{
		Location: location,
		Alerts:   s.evaluate(ctx, log, location, prev),
	}, nil
}

func (s *locationService) evaluate(ctx context.Context, log *logrus.Entry, location, prev *models.Location) []*models.Alert {
	point := location.Point()
	changed := make([]*models.Alert, 0)

	verdicts, err := s.evaluator.Evaluate(ctx, location.AnimalID, point)
	if err != nil {
		log.WithError(err).Error("Failed to evaluate geofences")
	} else {
		alerts, err := s.alerts.Apply(ctx, location.AnimalID, point, verdicts)
		if err != nil {
			log.WithError(err).Error("Failed to apply geofence verdicts")
		}
		changed = append(changed, alerts...)
	}

	// Точка из прошлого (догоняющая телеметрия) не участвует в расчете скорости
	if prev != nil && location.Timestamp.After(prev.Timestamp) {
		alert, err := s.alerts.ApplySpeed(ctx, location.AnimalID, point, s.evaluator.EvaluateSpeed(prev, location))
		if err != nil {
			log.WithError(err).Error("Failed to apply speed verdict")
		} else if alert != nil {
			changed = append(changed, alert)
		}
	}

	log.WithField("alerts_changed", len(changed)).Info("Location ingested")
	return changed
}

// History возвращает трек животного, новые точки первыми
func (s *locationService) History(ctx context.Context, actor models.Actor, animalID uuid.UUID, limit int) ([]*models.Location, error) {
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "location",
		"method":    "History",
		"animal_id": animalID,
		"limit":     limit,
	})

	animal, err := s.animals.GetByID(ctx, animalID)
	if err != nil {
		log.WithError(err).Warn("Failed to get animal")
		return nil, fmt.Errorf("service: could not get animal: %w", err)
	}
	if !actor.CanManage(animal.OwnerID) {
		log.WithField("actor_id", actor.UserID).Warn("Actor is not allowed to read location history")
		return nil, models.NewAuthorizationError("only the owner or an admin can read the location history")
	}

	locations, err := s.locations.ListByAnimal(ctx, animalID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list locations from repository")
		return nil, fmt.Errorf("service: could not list locations: %w", err)
	}
	return locations, nil
}
