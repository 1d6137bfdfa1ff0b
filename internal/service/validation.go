package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/animal_safety_tracker/internal/geo"
	"github.com/shenikar/animal_safety_tracker/internal/models"
)

func parseAnimalID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, models.NewFieldError("animal_id", "is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, models.NewFieldError("animal_id", "must be a valid UUID")
	}
	return id, nil
}

func validatePosition(lat, lon *float64) error {
	if lat == nil {
		return models.NewFieldError("latitude", "is required")
	}
	if lon == nil {
		return models.NewFieldError("longitude", "is required")
	}
	if !geo.ValidCoordinate(*lat, 0) {
		return models.NewFieldError("latitude", "must be within [-90, 90]")
	}
	if !geo.ValidCoordinate(0, *lon) {
		return models.NewFieldError("longitude", "must be within [-180, 180]")
	}
	return nil
}

// validateGeofence - общая проверка для территорий и опасных зон
func validateGeofence(g *models.Geofence) error {
	if !g.Kind.Valid() {
		return models.NewFieldError("kind", "must be territory or danger_zone")
	}
	if strings.TrimSpace(g.Name) == "" {
		return models.NewFieldError("name", "is required")
	}
	if g.AnimalID == uuid.Nil {
		return models.NewFieldError("animal_id", "is required")
	}
	if len(g.Coordinates) < models.MinGeofencePoints {
		return models.NewFieldError("coordinates", fmt.Sprintf("must contain at least %d points", models.MinGeofencePoints))
	}
	for i, c := range g.Coordinates {
		if !geo.ValidCoordinate(c.Latitude, c.Longitude) {
			return models.NewFieldError(fmt.Sprintf("coordinates[%d]", i), "latitude must be within [-90, 90] and longitude within [-180, 180]")
		}
	}

	switch g.Kind {
	case models.KindDangerZone:
		if g.Danger == nil || strings.TrimSpace(g.Danger.DangerType) == "" {
			return models.NewFieldError("danger_type", "is required for danger zones")
		}
	case models.KindTerritory:
		g.Danger = nil
	}
	return nil
}
