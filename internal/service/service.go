package service

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_safety_tracker/internal/models"
)

// AnimalRepository - доступ к животным. Состояние потери хранится прямо в записи животного.
type AnimalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Animal, error)
	// UpdateLostState меняет флаг одной атомарной записью; changed=true только если флаг действительно переключился
	UpdateLostState(ctx context.Context, id uuid.UUID, isLost bool, lostSince *time.Time) (animal *models.Animal, changed bool, err error)
	ListLostByTemperament(ctx context.Context, temperament models.Temperament) ([]*models.Animal, error)
	ListLostByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Animal, error)
}

// LocationRepository - журнал перемещений, только добавление
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	GetLatest(ctx context.Context, animalID uuid.UUID) (*models.Location, error)
	ListByAnimal(ctx context.Context, animalID uuid.UUID, limit int) ([]*models.Location, error)
}

// GeofenceRepository определяет контракт для работы с геозонами и их кешем
type GeofenceRepository interface {
	Create(ctx context.Context, geofence *models.Geofence) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Geofence, error)
	Update(ctx context.Context, geofence *models.Geofence) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, userID uuid.UUID, kind models.GeofenceKind) ([]*models.Geofence, error)
	ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]*models.Geofence, error)

	GetAnimalGeofencesFromCache(ctx context.Context, animalID uuid.UUID) ([]*models.Geofence, error)
	SetAnimalGeofencesCache(ctx context.Context, animalID uuid.UUID, geofences []*models.Geofence) error
	InvalidateAnimalGeofencesCache(ctx context.Context, animalID uuid.UUID) error
}

// AlertRepository - хранилище алертов.
// FindOpen ищет незакрытый (triggered) алерт по ключу животное/геозона/тип; geofenceID == nil для алертов скорости.
// Create возвращает created=false, если открытый алерт с тем же ключом уже существует.
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) (bool, error)
	FindOpen(ctx context.Context, animalID uuid.UUID, geofenceID *uuid.UUID, alertType models.AlertType) (*models.Alert, error)
	Resolve(ctx context.Context, id uuid.UUID, location models.Coordinate, resolvedAt time.Time) (*models.Alert, error)
	ListByAnimal(ctx context.Context, animalID uuid.UUID, status models.AlertStatus) ([]*models.Alert, error)
}

// LocationService - прием и чтение точек трека
type LocationService interface {
	Ingest(ctx context.Context, in models.LocationInput) (*models.IngestResult, error)
	History(ctx context.Context, actor models.Actor, animalID uuid.UUID, limit int) ([]*models.Location, error)
}

// GeofenceService определяет контракт CRUD геозон, общий для территорий и опасных зон
type GeofenceService interface {
	CreateGeofence(ctx context.Context, actor models.Actor, geofence *models.Geofence) error
	GetGeofence(ctx context.Context, actor models.Actor, kind models.GeofenceKind, id uuid.UUID) (*models.Geofence, error)
	UpdateGeofence(ctx context.Context, actor models.Actor, geofence *models.Geofence) error
	DeleteGeofence(ctx context.Context, actor models.Actor, kind models.GeofenceKind, id uuid.UUID) error
	ListGeofences(ctx context.Context, actor models.Actor, kind models.GeofenceKind) ([]*models.Geofence, error)
}

// AlertService - чтение алертов животного
type AlertService interface {
	ListAlerts(ctx context.Context, actor models.Actor, animalID uuid.UUID, status models.AlertStatus) ([]*models.Alert, error)
}

// LostAnimalService - состояние "потерян" и публичный реестр
type LostAnimalService interface {
	SetLost(ctx context.Context, actor models.Actor, animalID uuid.UUID, isLost bool) (*models.Animal, error)
	ListLostAggressive(ctx context.Context) ([]*models.Animal, error)
	ListMyLost(ctx context.Context, userID uuid.UUID) ([]*models.Animal, error)
}
