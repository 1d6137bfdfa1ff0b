package models

import (
	"time"

	"github.com/google/uuid"
)

// Temperament - характер животного
type Temperament string

const (
	TemperamentAggressive Temperament = "aggressive"
	TemperamentFriendly   Temperament = "friendly"
	TemperamentNeutral    Temperament = "neutral"
)

// Animal - животное с трекером. Регистрация животных живет вне этого сервиса,
// здесь меняется только состояние "потерян/найден".
type Animal struct {
	ID          uuid.UUID   `json:"id"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	Name        string      `json:"name"`
	Temperament Temperament `json:"temperament"`
	IsLost      bool        `json:"is_lost"`
	LostSince   *time.Time  `json:"lost_since"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// IsAggressive сообщает, можно ли публиковать животное в реестре потерянных
func (a *Animal) IsAggressive() bool {
	return a.Temperament == TemperamentAggressive
}
