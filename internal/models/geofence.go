package models

import (
	"time"

	"github.com/google/uuid"
)

// MinGeofencePoints - минимальное число вершин, которое принимается при создании/обновлении
const MinGeofencePoints = 4

// GeofenceKind - вид геозоны
type GeofenceKind string

const (
	// KindTerritory - разрешенная территория, выход за нее считается нарушением
	KindTerritory GeofenceKind = "territory"
	// KindDangerZone - запрещенная зона, вход в нее считается нарушением
	KindDangerZone GeofenceKind = "danger_zone"
)

func (k GeofenceKind) Valid() bool {
	return k == KindTerritory || k == KindDangerZone
}

// Coordinate - пара широта/долгота
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DangerZoneDetails - поля, специфичные для опасной зоны
type DangerZoneDetails struct {
	DangerType string `json:"danger_type"`
}

// Geofence - именованный полигон, привязанный к одному животному.
// Territory и DangerZone хранятся одной сущностью, вид задается Kind.
type Geofence struct {
	ID          uuid.UUID          `json:"id"`
	Kind        GeofenceKind       `json:"kind"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Coordinates []Coordinate       `json:"coordinates"`
	UserID      uuid.UUID          `json:"user_id"`
	AnimalID    uuid.UUID          `json:"animal_id"`
	Danger      *DangerZoneDetails `json:"danger,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// DangerType возвращает тип опасности или пустую строку для территории
func (g *Geofence) DangerType() string {
	if g.Danger == nil {
		return ""
	}
	return g.Danger.DangerType
}
