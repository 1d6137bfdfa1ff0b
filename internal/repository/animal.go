package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/animal_safety_tracker/internal/models"
	"github.com/shenikar/animal_safety_tracker/internal/service"
)

const (
	animalColumns          = `id, owner_id, name, temperament, is_lost, lost_since, created_at, updated_at`
	animalReturningColumns = `a.id, a.owner_id, a.name, a.temperament, a.is_lost, a.lost_since, a.created_at, a.updated_at`
)

type AnimalRepository struct {
	db *pgxpool.Pool
}

func NewAnimalRepository(db *pgxpool.Pool) service.AnimalRepository {
	return &AnimalRepository{db: db}
}

// GetByID возвращает животное по его UUID
func (r *AnimalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE id = $1;`

	animal, err := scanAnimal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFoundError("animal", id.String())
		}
		return nil, fmt.Errorf("failed to get animal by id: %w", err)
	}
	return animal, nil
}

// UpdateLostState атомарно меняет флаг потери одной записью.
// Блокировка строки в CTE сериализует конкурентные вызовы: второй видит уже записанный флаг,
// поэтому changed=true получает ровно один из них. Повторная пометка не сдвигает lost_since.
func (r *AnimalRepository) UpdateLostState(ctx context.Context, id uuid.UUID, isLost bool, lostSince *time.Time) (*models.Animal, bool, error) {
	query := `
		WITH prev AS (
			SELECT id, is_lost FROM animals WHERE id = $1 FOR UPDATE
		)
		UPDATE animals a SET
			is_lost = $2,
			lost_since = CASE WHEN prev.is_lost = $2 THEN a.lost_since ELSE $3 END,
			updated_at = NOW()
		FROM prev
		WHERE a.id = prev.id
		RETURNING ` + animalReturningColumns + `, prev.is_lost;
	`
	var wasLost bool
	animal, err := scanAnimal(r.db.QueryRow(ctx, query, id, isLost, lostSince), &wasLost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, models.NewNotFoundError("animal", id.String())
		}
		return nil, false, fmt.Errorf("failed to update lost state: %w", err)
	}
	return animal, wasLost != isLost, nil
}

// ListLostByTemperament возвращает потерянных животных всех владельцев с заданным характером
func (r *AnimalRepository) ListLostByTemperament(ctx context.Context, temperament models.Temperament) ([]*models.Animal, error) {
	query := `
		SELECT ` + animalColumns + `
		FROM animals
		WHERE is_lost AND temperament = $1
		ORDER BY lost_since DESC;
	`
	return r.list(ctx, query, temperament)
}

// ListLostByOwner возвращает потерянных животных пользователя
func (r *AnimalRepository) ListLostByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Animal, error) {
	query := `
		SELECT ` + animalColumns + `
		FROM animals
		WHERE is_lost AND owner_id = $1
		ORDER BY lost_since DESC;
	`
	return r.list(ctx, query, ownerID)
}

func (r *AnimalRepository) list(ctx context.Context, query string, args ...any) ([]*models.Animal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	defer rows.Close()

	animals := make([]*models.Animal, 0)
	for rows.Next() {
		animal, err := scanAnimal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan animal row: %w", err)
		}
		animals = append(animals, animal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return animals, nil
}

// scanAnimal читает колонки animalColumns; extra - дополнительные колонки после них
func scanAnimal(row pgx.Row, extra ...any) (*models.Animal, error) {
	animal := &models.Animal{}
	dest := []any{
		&animal.ID,
		&animal.OwnerID,
		&animal.Name,
		&animal.Temperament,
		&animal.IsLost,
		&animal.LostSince,
		&animal.CreatedAt,
		&animal.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return animal, nil
}
