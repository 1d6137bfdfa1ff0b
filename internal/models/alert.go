package models

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertTypeGeofence   AlertType = "Geofence"
	AlertTypeSpeed      AlertType = "Speed"
	AlertTypeDangerZone AlertType = "DangerZone"
)

type AlertStatus string

const (
	AlertStatusTriggered AlertStatus = "triggered"
	AlertStatusResolved  AlertStatus = "resolved"
)

// DefaultAlertStatus совпадает с DEFAULT в схеме alerts.status.
// Значение сохранено как есть: менеджер алертов всегда явно пишет triggered при открытии.
const DefaultAlertStatus = AlertStatusResolved

// Threshold - геометрия, на которой сработал алерт (радиус в километрах)
type Threshold struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}

type Alert struct {
	ID               uuid.UUID   `json:"id"`
	AnimalID         uuid.UUID   `json:"animal_id"`
	AlertType        AlertType   `json:"alert_type"`
	Description      string      `json:"description"`
	Threshold        Threshold   `json:"threshold"`
	Location         Coordinate  `json:"location"`
	Status           AlertStatus `json:"status"`
	Timestamp        time.Time   `json:"timestamp"`
	GeofenceID       *uuid.UUID  `json:"geofence_id,omitempty"`
	DangerZone       *uuid.UUID  `json:"danger_zone,omitempty"`
	DangerType       string      `json:"danger_type,omitempty"`
	ResolvedAt       *time.Time  `json:"resolved_at,omitempty"`
	ResolvedLocation *Coordinate `json:"resolved_location,omitempty"`
}

// ApplyDefaults проставляет значения по умолчанию так же, как это делает схема БД
func (a *Alert) ApplyDefaults(now time.Time) {
	if a.Status == "" {
		a.Status = DefaultAlertStatus
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = now
	}
}

func (a *Alert) IsOpen() bool {
	return a.Status == AlertStatusTriggered
}
