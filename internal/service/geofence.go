package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/animal_safety_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

type geofenceService struct {
	repo    GeofenceRepository
	animals AnimalRepository
	logger  *logrus.Logger
}

func NewGeofenceService(repo GeofenceRepository, animals AnimalRepository, logger *logrus.Logger) GeofenceService {
	return &geofenceService{
		repo:    repo,
		animals: animals,
		logger:  logger,
	}
}

// CreateGeofence создает территорию или опасную зону для животного пользователя
func (s *geofenceService) CreateGeofence(ctx context.Context, actor models.Actor, geofence *models.Geofence) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "geofence",
		"method":    "CreateGeofence",
		"kind":      geofence.Kind,
		"animal_id": geofence.AnimalID,
		"actor_id":  actor.UserID,
	})
	log.Info("Attempting to create a new geofence")

	if err := validateGeofence(geofence); err != nil {
		log.WithError(err).Warn("Geofence validation failed")
		return err
	}
	animal, err := s.authorizeAnimal(ctx, actor, geofence.AnimalID)
	if err != nil {
		log.WithError(err).Warn("Geofence animal is not available to actor")
		return err
	}

	// Геозона принадлежит владельцу животного, даже если ее создал администратор
	geofence.UserID = animal.OwnerID
	if err := s.repo.Create(ctx, geofence); err != nil {
		log.WithError(err).Error("Failed to create geofence in repository")
		return fmt.Errorf("service: could not create geofence: %w", err)
	}
	s.invalidate(ctx, log, geofence.AnimalID)

	log.WithField("geofence_id", geofence.ID).Info("Geofence created successfully")
	return nil
}

// GetGeofence получает геозону указанного вида по ID
func (s *geofenceService) GetGeofence(ctx context.Context, actor models.Actor, kind models.GeofenceKind, id uuid.UUID) (*models.Geofence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "geofence",
		"method":      "GetGeofence",
		"geofence_id": id,
	})

	geofence, err := s.getOwned(ctx, actor, kind, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get geofence")
		return nil, err
	}
	return geofence, nil
}

// UpdateGeofence обновляет существующую геозону, вид и владелец не меняются
func (s *geofenceService) UpdateGeofence(ctx context.Context, actor models.Actor, geofence *models.Geofence) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "geofence",
		"method":      "UpdateGeofence",
		"geofence_id": geofence.ID,
	})
	log.Info("Attempting to update geofence")

	if err := validateGeofence(geofence); err != nil {
		log.WithError(err).Warn("Geofence validation failed")
		return err
	}

	existing, err := s.getOwned(ctx, actor, geofence.Kind, geofence.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update an unavailable geofence")
		return err
	}
	if geofence.AnimalID != existing.AnimalID {
		animal, err := s.authorizeAnimal(ctx, actor, geofence.AnimalID)
		if err != nil {
			log.WithError(err).Warn("New geofence animal is not available to actor")
			return err
		}
		existing.UserID = animal.OwnerID
	}

	existing.Name = geofence.Name
	existing.Description = geofence.Description
	existing.Coordinates = geofence.Coordinates
	existing.Danger = geofence.Danger
	previousAnimal := existing.AnimalID
	existing.AnimalID = geofence.AnimalID

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update geofence in repository")
		return fmt.Errorf("service: could not update geofence: %w", err)
	}
	s.invalidate(ctx, log, previousAnimal)
	if previousAnimal != existing.AnimalID {
		s.invalidate(ctx, log, existing.AnimalID)
	}

	*geofence = *existing
	log.Info("Geofence updated successfully")
	return nil
}

// DeleteGeofence удаляет геозону
func (s *geofenceService) DeleteGeofence(ctx context.Context, actor models.Actor, kind models.GeofenceKind, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "geofence",
		"method":      "DeleteGeofence",
		"geofence_id": id,
	})
	log.Info("Attempting to delete geofence")

	existing, err := s.getOwned(ctx, actor, kind, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to delete an unavailable geofence")
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete geofence in repository")
		return fmt.Errorf("service: could not delete geofence: %w", err)
	}
	s.invalidate(ctx, log, existing.AnimalID)

	log.Info("Geofence deleted successfully")
	return nil
}

// ListGeofences возвращает геозоны пользователя указанного вида
func (s *geofenceService) ListGeofences(ctx context.Context, actor models.Actor, kind models.GeofenceKind) ([]*models.Geofence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "geofence",
		"method":   "ListGeofences",
		"kind":     kind,
		"actor_id": actor.UserID,
	})

	geofences, err := s.repo.ListByOwner(ctx, actor.UserID, kind)
	if err != nil {
		log.WithError(err).Error("Failed to list geofences from repository")
		return nil, fmt.Errorf("service: could not list geofences: %w", err)
	}

	log.WithField("count", len(geofences)).Info("Geofences listed successfully")
	return geofences, nil
}

// getOwned загружает геозону и проверяет вид и права пользователя.
// Геозона другого вида считается несуществующей.
func (s *geofenceService) getOwned(ctx context.Context, actor models.Actor, kind models.GeofenceKind, id uuid.UUID) (*models.Geofence, error) {
	geofence, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get geofence: %w", err)
	}
	if geofence.Kind != kind {
		return nil, models.NewNotFoundError(string(kind), id.String())
	}
	if !actor.CanManage(geofence.UserID) {
		return nil, models.NewAuthorizationError("geofence belongs to another user")
	}
	return geofence, nil
}

// authorizeAnimal принимает только пары (животное, пользователь), где пользователь - владелец или админ
func (s *geofenceService) authorizeAnimal(ctx context.Context, actor models.Actor, animalID uuid.UUID) (*models.Animal, error) {
	animal, err := s.animals.GetByID(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get animal: %w", err)
	}
	if !actor.CanManage(animal.OwnerID) {
		return nil, models.NewAuthorizationError("animal belongs to another user")
	}
	return animal, nil
}

func (s *geofenceService) invalidate(ctx context.Context, log *logrus.Entry, animalID uuid.UUID) {
	if err := s.repo.InvalidateAnimalGeofencesCache(ctx, animalID); err != nil {
		log.WithError(err).Warn("Failed to invalidate geofence cache")
	}
}
