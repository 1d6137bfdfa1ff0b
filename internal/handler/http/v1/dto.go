package v1

import (
	"time"

	"github.com/google/uuid"
)

// LocationRequest DTO для приема одной точки от трекера
// @Description DTO для приема одной точки от трекера
type LocationRequest struct {
	AnimalID  string   `json:"animal_id" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	// Unix-время показания в секундах, по умолчанию время приема
	Timestamp *int64 `json:"timestamp,omitempty" validate:"omitempty,gt=0"`
}

// LocationBatchRequest DTO для пакетного приема точек от синхронизатора
// @Description DTO для пакетного приема точек от синхронизатора
type LocationBatchRequest struct {
	Locations []LocationRequest `json:"locations" validate:"required,min=1,max=1000"`
}

// CoordinateRequest DTO вершины полигона
// @Description DTO вершины полигона
type CoordinateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// GeofenceRequest DTO для создания и обновления территории или опасной зоны
// @Description DTO для создания и обновления территории или опасной зоны
type GeofenceRequest struct {
	Name        string              `json:"name" validate:"required,min=1,max=255"`
	Description string              `json:"description,omitempty"`
	AnimalID    string              `json:"animal_id" validate:"required,uuid"`
	Coordinates []CoordinateRequest `json:"coordinates" validate:"required,dive"`
	// Обязателен для опасных зон, для территорий игнорируется
	DangerType string `json:"danger_type,omitempty" validate:"max=100"`
}

// SetLostRequest DTO для смены флага потери
// @Description DTO для смены флага потери
type SetLostRequest struct {
	IsLost *bool `json:"is_lost" validate:"required"`
}

// Coordinate DTO пары широта/долгота в ответах
// @Description DTO пары широта/долгота в ответах
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ThresholdResponse DTO геометрии срабатывания алерта
// @Description DTO геометрии срабатывания алерта, радиус в километрах
type ThresholdResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}

// LocationResponse DTO точки трека
// @Description DTO точки трека
type LocationResponse struct {
	ID        uuid.UUID `json:"id"`
	AnimalID  uuid.UUID `json:"animal_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// AlertResponse DTO алерта
// @Description DTO алерта
type AlertResponse struct {
	ID               uuid.UUID         `json:"id"`
	AnimalID         uuid.UUID         `json:"animal_id"`
	AlertType        string            `json:"alert_type"`
	Description      string            `json:"description"`
	Threshold        ThresholdResponse `json:"threshold"`
	Location         Coordinate        `json:"location"`
	Status           string            `json:"status"`
	Timestamp        time.Time         `json:"timestamp"`
	GeofenceID       *uuid.UUID        `json:"geofence_id,omitempty"`
	DangerZone       *uuid.UUID        `json:"danger_zone,omitempty"`
	DangerType       string            `json:"danger_type,omitempty"`
	ResolvedAt       *time.Time        `json:"resolved_at,omitempty"`
	ResolvedLocation *Coordinate       `json:"resolved_location,omitempty"`
}

// IngestResponse DTO результата приема точки
// @Description DTO результата приема точки: сохраненная точка и алерты, которые она открыла или закрыла
type IngestResponse struct {
	Location *LocationResponse `json:"location"`
	Alerts   []*AlertResponse  `json:"alerts"`
}

// BatchItemResult DTO результата по одному элементу пакета
// @Description DTO результата по одному элементу пакета
type BatchItemResult struct {
	Index    int               `json:"index"`
	Location *LocationResponse `json:"location,omitempty"`
	Alerts   []*AlertResponse  `json:"alerts,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// BatchIngestResponse DTO результата пакетного приема
// @Description DTO результата пакетного приема
type BatchIngestResponse struct {
	Accepted int                `json:"accepted"`
	Rejected int                `json:"rejected"`
	Results  []*BatchItemResult `json:"results"`
}

// GeofenceResponse DTO территории или опасной зоны
// @Description DTO территории или опасной зоны
type GeofenceResponse struct {
	ID          uuid.UUID    `json:"id"`
	Kind        string       `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Coordinates []Coordinate `json:"coordinates"`
	UserID      uuid.UUID    `json:"user_id"`
	AnimalID    uuid.UUID    `json:"animal_id"`
	DangerType  string       `json:"danger_type,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// AnimalResponse DTO животного
// @Description DTO животного
type AnimalResponse struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Name        string     `json:"name"`
	Temperament string     `json:"temperament"`
	IsLost      bool       `json:"is_lost"`
	LostSince   *time.Time `json:"lost_since"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
