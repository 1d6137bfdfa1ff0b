package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/animal_safety_tracker/internal/models"
	"github.com/shenikar/animal_safety_tracker/internal/service"
)

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) service.LocationRepository {
	return &LocationRepository{db: db}
}

// Create добавляет точку в трек животного
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	query := `
		INSERT INTO locations (animal_id, latitude, longitude, timestamp)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		location.AnimalID,
		location.Latitude,
		location.Longitude,
		location.Timestamp,
	).Scan(&location.ID)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

// GetLatest возвращает последнюю известную точку животного или nil, если трек пуст
func (r *LocationRepository) GetLatest(ctx context.Context, animalID uuid.UUID) (*models.Location, error) {
	query := `
		SELECT id, animal_id, latitude, longitude, timestamp
		FROM locations
		WHERE animal_id = $1
		ORDER BY timestamp DESC
		LIMIT 1;
	`
	location := &models.Location{}
	err := r.db.QueryRow(ctx, query, animalID).Scan(
		&location.ID,
		&location.AnimalID,
		&location.Latitude,
		&location.Longitude,
		&location.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest location: %w", err)
	}
	return location, nil
}

// ListByAnimal возвращает трек животного, новые точки первыми
func (r *LocationRepository) ListByAnimal(ctx context.Context, animalID uuid.UUID, limit int) ([]*models.Location, error) {
	query := `
		SELECT id, animal_id, latitude, longitude, timestamp
		FROM locations
		WHERE animal_id = $1
		ORDER BY timestamp DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, animalID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.Location, 0)
	for rows.Next() {
		location := &models.Location{}
		err := rows.Scan(
			&location.ID,
			&location.AnimalID,
			&location.Latitude,
			&location.Longitude,
			&location.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return locations, nil
}
