package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_safety_tracker/internal/models"
	"github.com/shenikar/animal_safety_tracker/internal/webhook"
	"github.com/sirupsen/logrus"
)

type lostAnimalService struct {
	repo      AnimalRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	now       func() time.Time
}

func NewLostAnimalService(repo AnimalRepository, publisher webhook.WebhookPublisher, logger *logrus.Logger) LostAnimalService {
	return &lostAnimalService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// SetLost меняет флаг потери. Пометить потерянным можно только агрессивное животное:
// реестр потерянных предназначен для предупреждения об опасности.
func (s *lostAnimalService) SetLost(ctx context.Context, actor models.Actor, animalID uuid.UUID, isLost bool) (*models.Animal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "lost",
		"method":    "SetLost",
		"animal_id": animalID,
		"actor_id":  actor.UserID,
		"is_lost":   isLost,
	})
	log.Info("Attempting to change lost state")

	animal, err := s.repo.GetByID(ctx, animalID)
	if err != nil {
		log.WithError(err).Warn("Failed to get animal")
		return nil, fmt.Errorf("service: could not get animal: %w", err)
	}

	if !actor.CanManage(animal.OwnerID) {
		log.Warn("Actor is neither owner nor admin")
		return nil, models.NewAuthorizationError("only the owner or an admin can change the lost state")
	}

	var lostSince *time.Time
	if isLost {
		if !animal.IsAggressive() {
			log.WithField("temperament", animal.Temperament).Warn("Rejected lost flag for non-aggressive animal")
			return nil, models.NewAuthorizationError("only animals with aggressive temperament can be marked as lost")
		}
		now := s.now()
		lostSince = &now
	}

	updated, changed, err := s.repo.UpdateLostState(ctx, animalID, isLost, lostSince)
	if err != nil {
		log.WithError(err).Error("Failed to update lost state in repository")
		return nil, fmt.Errorf("service: could not update lost state: %w", err)
	}

	// Хук вызывается только тем запросом, который реально переключил флаг в хранилище
	if isLost && changed {
		s.notifyLost(ctx, log, updated)
	}

	log.Info("Lost state updated successfully")
	return updated, nil
}

// ListLostAggressive - публичный реестр потерянных агрессивных животных всех владельцев
func (s *lostAnimalService) ListLostAggressive(ctx context.Context) ([]*models.Animal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "lost",
		"method":  "ListLostAggressive",
	})

	animals, err := s.repo.ListLostByTemperament(ctx, models.TemperamentAggressive)
	if err != nil {
		log.WithError(err).Error("Failed to list lost animals from repository")
		return nil, fmt.Errorf("service: could not list lost animals: %w", err)
	}

	log.WithField("count", len(animals)).Info("Lost animals listed successfully")
	return animals, nil
}

// ListMyLost возвращает потерянных животных пользователя
func (s *lostAnimalService) ListMyLost(ctx context.Context, userID uuid.UUID) ([]*models.Animal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "lost",
		"method":  "ListMyLost",
		"user_id": userID,
	})

	animals, err := s.repo.ListLostByOwner(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list own lost animals from repository")
		return nil, fmt.Errorf("service: could not list own lost animals: %w", err)
	}
	return animals, nil
}

// notifyLost вызывает внешний хук уведомлений ровно один раз на переход в "потерян"
func (s *lostAnimalService) notifyLost(ctx context.Context, log *logrus.Entry, animal *models.Animal) {
	event := webhook.WebhookEvent{
		Type:      webhook.EventAnimalLost,
		AnimalID:  animal.ID,
		OwnerID:   animal.OwnerID,
		Timestamp: s.now(),
		Animal:    animal,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish lost animal event")
	}
}
