package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_safety_tracker/internal/models"
)

// DTOToLocationInput преобразует DTO точки во входные данные сервиса.
// Диапазоны координат и формат ID проверяет сервис.
func DTOToLocationInput(dto LocationRequest) models.LocationInput {
	in := models.LocationInput{
		AnimalID:  dto.AnimalID,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
	}
	if dto.Timestamp != nil {
		ts := time.Unix(*dto.Timestamp, 0).UTC()
		in.Timestamp = &ts
	}
	return in
}

// DTOToGeofenceModel преобразует DTO геозоны в доменную модель заданного вида
func DTOToGeofenceModel(dto GeofenceRequest, kind models.GeofenceKind) *models.Geofence {
	animalID, _ := uuid.Parse(dto.AnimalID) // Формат уже проверен валидатором

	coordinates := make([]models.Coordinate, len(dto.Coordinates))
	for i, c := range dto.Coordinates {
		coordinates[i] = models.Coordinate{Latitude: *c.Latitude, Longitude: *c.Longitude}
	}

	geofence := &models.Geofence{
		Kind:        kind,
		Name:        dto.Name,
		Description: dto.Description,
		Coordinates: coordinates,
		AnimalID:    animalID,
	}
	if kind == models.KindDangerZone {
		geofence.Danger = &models.DangerZoneDetails{DangerType: dto.DangerType}
	}
	return geofence
}

func ModelToLocationResponse(model *models.Location) *LocationResponse {
	return &LocationResponse{
		ID:        model.ID,
		AnimalID:  model.AnimalID,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Timestamp: model.Timestamp,
	}
}

func ModelsToLocationResponses(models []*models.Location) []*LocationResponse {
	responses := make([]*LocationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToLocationResponse(model)
	}
	return responses
}

func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	resp := &AlertResponse{
		ID:          model.ID,
		AnimalID:    model.AnimalID,
		AlertType:   string(model.AlertType),
		Description: model.Description,
		Threshold: ThresholdResponse{
			Latitude:  model.Threshold.Latitude,
			Longitude: model.Threshold.Longitude,
			Radius:    model.Threshold.Radius,
		},
		Location:   Coordinate(model.Location),
		Status:     string(model.Status),
		Timestamp:  model.Timestamp,
		GeofenceID: model.GeofenceID,
		DangerZone: model.DangerZone,
		DangerType: model.DangerType,
		ResolvedAt: model.ResolvedAt,
	}
	if model.ResolvedLocation != nil {
		resolved := Coordinate(*model.ResolvedLocation)
		resp.ResolvedLocation = &resolved
	}
	return resp
}

func ModelsToAlertResponses(models []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

func ModelToIngestResponse(result *models.IngestResult) *IngestResponse {
	return &IngestResponse{
		Location: ModelToLocationResponse(result.Location),
		Alerts:   ModelsToAlertResponses(result.Alerts),
	}
}

func ModelToGeofenceResponse(model *models.Geofence) *GeofenceResponse {
	coordinates := make([]Coordinate, len(model.Coordinates))
	for i, c := range model.Coordinates {
		coordinates[i] = Coordinate(c)
	}
	return &GeofenceResponse{
		ID:          model.ID,
		Kind:        string(model.Kind),
		Name:        model.Name,
		Description: model.Description,
		Coordinates: coordinates,
		UserID:      model.UserID,
		AnimalID:    model.AnimalID,
		DangerType:  model.DangerType(),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ModelsToGeofenceResponses(models []*models.Geofence) []*GeofenceResponse {
	responses := make([]*GeofenceResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToGeofenceResponse(model)
	}
	return responses
}

func ModelToAnimalResponse(model *models.Animal) *AnimalResponse {
	return &AnimalResponse{
		ID:          model.ID,
		OwnerID:     model.OwnerID,
		Name:        model.Name,
		Temperament: string(model.Temperament),
		IsLost:      model.IsLost,
		LostSince:   model.LostSince,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ModelsToAnimalResponses(models []*models.Animal) []*AnimalResponse {
	responses := make([]*AnimalResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAnimalResponse(model)
	}
	return responses
}
