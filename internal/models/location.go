package models

import (
	"time"

	"github.com/google/uuid"
)

// Location - точка трека животного. После записи не изменяется.
type Location struct {
	ID        uuid.UUID `json:"id"`
	AnimalID  uuid.UUID `json:"animal_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// Point возвращает координаты точки трека
func (l *Location) Point() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// LocationInput - одно показание на границе приема, до валидации
type LocationInput struct {
	AnimalID  string
	Latitude  *float64
	Longitude *float64
	Timestamp *time.Time
}

// IngestResult - сохраненная точка и алерты, которые она открыла или закрыла
type IngestResult struct {
	Location *Location `json:"location"`
	Alerts   []*Alert  `json:"alerts"`
}
