package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_safety_tracker/internal/models"
	"github.com/shenikar/animal_safety_tracker/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AlertManager открывает и закрывает алерты по вердиктам оценщика.
// Переходы: нет алерта -> triggered -> resolved. Закрытый алерт не переоткрывается,
// новое нарушение создает новую запись.
type AlertManager struct {
	alerts    AlertRepository
	animals   AnimalRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	now       func() time.Time
}

func NewAlertManager(alerts AlertRepository, animals AnimalRepository, publisher webhook.WebhookPublisher, logger *logrus.Logger) *AlertManager {
	return &AlertManager{
		alerts:    alerts,
		animals:   animals,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// alertKey - ключ, по которому алерт считается тем же самым
type alertKey struct {
	geofenceID *uuid.UUID
	alertType  models.AlertType
}

// Apply применяет вердикты по геозонам для точки и возвращает созданные или закрытые алерты.
// Ошибка по одной геозоне не останавливает обработку остальных, ошибки возвращаются вместе.
func (m *AlertManager) Apply(ctx context.Context, animalID uuid.UUID, location models.Coordinate, verdicts []Verdict) ([]*models.Alert, error) {
	changed := make([]*models.Alert, 0)
	var errs []error
	for _, v := range verdicts {
		alertType := models.AlertTypeGeofence
		if v.Kind == models.KindDangerZone {
			alertType = models.AlertTypeDangerZone
		}
		geofenceID := v.Geofence.ID
		key := alertKey{geofenceID: &geofenceID, alertType: alertType}

		alert, err := m.transition(ctx, animalID, key, v.Violated, location, func() *models.Alert {
			return m.newGeofenceAlert(animalID, location, v, alertType)
		})
		if err != nil {
			m.logger.WithFields(logrus.Fields{
				"service":     "alert",
				"method":      "Apply",
				"animal_id":   animalID,
				"geofence_id": geofenceID,
			}).WithError(err).Error("Failed to apply geofence verdict, continuing with the rest")
			errs = append(errs, err)
			continue
		}
		if alert != nil {
			changed = append(changed, alert)
		}
	}
	return changed, errors.Join(errs...)
}

// ApplySpeed применяет вердикт скорости; отсутствие вердикта ничего не меняет
func (m *AlertManager) ApplySpeed(ctx context.Context, animalID uuid.UUID, location models.Coordinate, v *SpeedVerdict) (*models.Alert, error) {
	if v == nil {
		return nil, nil
	}
	key := alertKey{alertType: models.AlertTypeSpeed}
	return m.transition(ctx, animalID, key, v.Violated, location, func() *models.Alert {
		return &models.Alert{
			AnimalID:    animalID,
			AlertType:   models.AlertTypeSpeed,
			Description: fmt.Sprintf("speed %.1f km/h exceeds limit %.1f km/h", v.SpeedKmh, v.LimitKmh),
			Threshold:   v.Threshold,
			Location:    location,
			Status:      models.AlertStatusTriggered,
			Timestamp:   m.now(),
		}
	})
}

// ListAlerts возвращает алерты животного владельцу или администратору
func (m *AlertManager) ListAlerts(ctx context.Context, actor models.Actor, animalID uuid.UUID, status models.AlertStatus) ([]*models.Alert, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "ListAlerts",
		"animal_id": animalID,
		"status":    status,
	})

	animal, err := m.animals.GetByID(ctx, animalID)
	if err != nil {
		log.WithError(err).Warn("Failed to get animal")
		return nil, fmt.Errorf("service: could not get animal: %w", err)
	}
	if !actor.CanManage(animal.OwnerID) {
		log.WithField("actor_id", actor.UserID).Warn("Actor is not allowed to read alerts")
		return nil, models.NewAuthorizationError("only the owner or an admin can read alerts of this animal")
	}

	alerts, err := m.alerts.ListByAnimal(ctx, animalID, status)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

func (m *AlertManager) transition(
	ctx context.Context,
	animalID uuid.UUID,
	key alertKey,
	violated bool,
	location models.Coordinate,
	build func() *models.Alert,
) (*models.Alert, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "transition",
		"animal_id":  animalID,
		"alert_type": key.alertType,
	})
	if key.geofenceID != nil {
		log = log.WithField("geofence_id", *key.geofenceID)
	}

	open, err := m.alerts.FindOpen(ctx, animalID, key.geofenceID, key.alertType)
	if err != nil {
		log.WithError(err).Error("Failed to find open alert")
		return nil, fmt.Errorf("service: could not find open alert: %w", err)
	}

	switch {
	case violated && open != nil:
		// Уже открыт, повторное нарушение не порождает дубль
		return nil, nil

	case violated:
		alert := build()
		created, err := m.alerts.Create(ctx, alert)
		if err != nil {
			log.WithError(err).Error("Failed to create alert")
			return nil, fmt.Errorf("service: could not create alert: %w", err)
		}
		if !created {
			log.Debug("Concurrent request already opened this alert")
			return nil, nil
		}
		log.WithField("alert_id", alert.ID).Info("Alert triggered")
		m.publish(ctx, log, webhook.EventAlertTriggered, alert)
		return alert, nil

	case open != nil:
		resolved, err := m.alerts.Resolve(ctx, open.ID, location, m.now())
		if errors.Is(err, models.ErrNotFound) {
			log.WithField("alert_id", open.ID).Debug("Concurrent request already resolved this alert")
			return nil, nil
		}
		if err != nil {
			log.WithError(err).Error("Failed to resolve alert")
			return nil, fmt.Errorf("service: could not resolve alert: %w", err)
		}
		log.WithField("alert_id", resolved.ID).Info("Alert resolved")
		m.publish(ctx, log, webhook.EventAlertResolved, resolved)
		return resolved, nil
	}

	return nil, nil
}

func (m *AlertManager) newGeofenceAlert(animalID uuid.UUID, location models.Coordinate, v Verdict, alertType models.AlertType) *models.Alert {
	geofenceID := v.Geofence.ID
	alert := &models.Alert{
		AnimalID:   animalID,
		AlertType:  alertType,
		Threshold:  v.Threshold,
		Location:   location,
		Status:     models.AlertStatusTriggered,
		Timestamp:  m.now(),
		GeofenceID: &geofenceID,
	}
	if v.Kind == models.KindDangerZone {
		alert.DangerZone = &geofenceID
		alert.DangerType = v.Geofence.DangerType()
		alert.Description = fmt.Sprintf("entered danger zone %q (%s)", v.Geofence.Name, alert.DangerType)
	} else {
		alert.Description = fmt.Sprintf("left territory %q", v.Geofence.Name)
	}
	return alert
}

// publish - точка срабатывания уведомлений; ошибка доставки не влияет на алерт
func (m *AlertManager) publish(ctx context.Context, log *logrus.Entry, eventType webhook.EventType, alert *models.Alert) {
	if m.publisher == nil {
		return
	}
	event := webhook.WebhookEvent{
		Type:      eventType,
		AnimalID:  alert.AnimalID,
		Latitude:  alert.Location.Latitude,
		Longitude: alert.Location.Longitude,
		Timestamp: m.now(),
		Alert:     alert,
	}
	if err := m.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish alert event")
	}
}
