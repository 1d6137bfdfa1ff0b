package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/animal_safety_tracker/internal/models"
	"github.com/shenikar/animal_safety_tracker/internal/service"
)

const geofenceColumns = `id, kind, name, description, coordinates, user_id, animal_id, danger_type, created_at, updated_at`

type GeofenceRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewGeofenceRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.GeofenceRepository {
	return &GeofenceRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create сохраняет новую территорию или опасную зону
func (r *GeofenceRepository) Create(ctx context.Context, geofence *models.Geofence) error {
	coordinates, err := json.Marshal(geofence.Coordinates)
	if err != nil {
		return fmt.Errorf("failed to marshal geofence coordinates: %w", err)
	}

	query := `
		INSERT INTO geofences (kind, name, description, coordinates, user_id, animal_id, danger_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		geofence.Kind,
		geofence.Name,
		geofence.Description,
		coordinates,
		geofence.UserID,
		geofence.AnimalID,
		dangerTypeArg(geofence),
	).Scan(&geofence.ID, &geofence.CreatedAt, &geofence.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create geofence: %w", err)
	}
	return nil
}

// GetByID возвращает геозону любого вида по UUID
func (r *GeofenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Geofence, error) {
	query := `SELECT ` + geofenceColumns + ` FROM geofences WHERE id = $1;`

	geofence, err := scanGeofence(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFoundError("geofence", id.String())
		}
		return nil, fmt.Errorf("failed to get geofence by id: %w", err)
	}
	return geofence, nil
}

// Update перезаписывает изменяемые поля геозоны и обновляет updated_at
func (r *GeofenceRepository) Update(ctx context.Context, geofence *models.Geofence) error {
	coordinates, err := json.Marshal(geofence.Coordinates)
	if err != nil {
		return fmt.Errorf("failed to marshal geofence coordinates: %w", err)
	}

	query := `
		UPDATE geofences SET
			name = $1,
			description = $2,
			coordinates = $3,
			user_id = $4,
			animal_id = $5,
			danger_type = $6,
			updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		geofence.Name,
		geofence.Description,
		coordinates,
		geofence.UserID,
		geofence.AnimalID,
		dangerTypeArg(geofence),
		geofence.ID,
	).Scan(&geofence.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.NewNotFoundError("geofence", geofence.ID.String())
		}
		return fmt.Errorf("failed to update geofence: %w", err)
	}
	return nil
}

// Delete удаляет геозону. Открытые по ней алерты закрываются в той же транзакции,
// иначе они остались бы triggered навсегда.
func (r *GeofenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			UPDATE alerts SET
				status = 'resolved',
				resolved_at = NOW()
			WHERE geofence_id = $1 AND status = 'triggered';
		`, id)
		if err != nil {
			return fmt.Errorf("failed to resolve alerts of geofence: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM geofences WHERE id = $1;`, id)
		if err != nil {
			return fmt.Errorf("failed to delete geofence: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return models.NewNotFoundError("geofence", id.String())
		}
		return nil
	})
}

// ListByOwner возвращает геозоны пользователя указанного вида
func (r *GeofenceRepository) ListByOwner(ctx context.Context, userID uuid.UUID, kind models.GeofenceKind) ([]*models.Geofence, error) {
	query := `
		SELECT ` + geofenceColumns + `
		FROM geofences
		WHERE user_id = $1 AND kind = $2
		ORDER BY created_at DESC;
	`
	return r.list(ctx, query, userID, kind)
}

// ListByAnimal возвращает все геозоны животного обоих видов
func (r *GeofenceRepository) ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]*models.Geofence, error) {
	query := `
		SELECT ` + geofenceColumns + `
		FROM geofences
		WHERE animal_id = $1
		ORDER BY created_at;
	`
	return r.list(ctx, query, animalID)
}

func (r *GeofenceRepository) list(ctx context.Context, query string, args ...any) ([]*models.Geofence, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}
	defer rows.Close()

	geofences := make([]*models.Geofence, 0)
	for rows.Next() {
		geofence, err := scanGeofence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan geofence row: %w", err)
		}
		geofences = append(geofences, geofence)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return geofences, nil
}

// GetAnimalGeofencesFromCache пытается получить геозоны животного из Redis.
// Промах кеша возвращает nil без ошибки.
func (r *GeofenceRepository) GetAnimalGeofencesFromCache(ctx context.Context, animalID uuid.UUID) ([]*models.Geofence, error) {
	val, err := r.redisClient.Get(ctx, animalGeofencesKey(animalID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get geofences from cache: %w", err)
	}

	geofences := make([]*models.Geofence, 0)
	if err := json.Unmarshal(val, &geofences); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geofences from cache: %w", err)
	}
	return geofences, nil
}

// SetAnimalGeofencesCache сохраняет геозоны животного в Redis, пустой список тоже кешируется
func (r *GeofenceRepository) SetAnimalGeofencesCache(ctx context.Context, animalID uuid.UUID, geofences []*models.Geofence) error {
	if geofences == nil {
		geofences = make([]*models.Geofence, 0)
	}
	val, err := json.Marshal(geofences)
	if err != nil {
		return fmt.Errorf("failed to marshal geofences for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, animalGeofencesKey(animalID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set geofences in cache: %w", err)
	}
	return nil
}

// InvalidateAnimalGeofencesCache удаляет геозоны животного из Redis кеша
func (r *GeofenceRepository) InvalidateAnimalGeofencesCache(ctx context.Context, animalID uuid.UUID) error {
	if err := r.redisClient.Del(ctx, animalGeofencesKey(animalID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate geofences cache: %w", err)
	}
	return nil
}

func animalGeofencesKey(animalID uuid.UUID) string {
	return fmt.Sprintf("animal_geofences:%s", animalID.String())
}

func dangerTypeArg(geofence *models.Geofence) *string {
	if geofence.Kind != models.KindDangerZone || geofence.Danger == nil {
		return nil
	}
	dangerType := geofence.Danger.DangerType
	return &dangerType
}

func scanGeofence(row pgx.Row) (*models.Geofence, error) {
	geofence := &models.Geofence{}
	var (
		coordinates []byte
		dangerType  *string
	)
	err := row.Scan(
		&geofence.ID,
		&geofence.Kind,
		&geofence.Name,
		&geofence.Description,
		&coordinates,
		&geofence.UserID,
		&geofence.AnimalID,
		&dangerType,
		&geofence.CreatedAt,
		&geofence.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(coordinates, &geofence.Coordinates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geofence coordinates: %w", err)
	}
	if dangerType != nil {
		geofence.Danger = &models.DangerZoneDetails{DangerType: *dangerType}
	}
	return geofence, nil
}
