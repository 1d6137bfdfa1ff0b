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

const alertColumns = `
	id, animal_id, alert_type, description,
	threshold_latitude, threshold_longitude, threshold_radius,
	location_latitude, location_longitude,
	status, timestamp, geofence_id, danger_zone_id, danger_type,
	resolved_at, resolved_latitude, resolved_longitude`

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

// Create вставляет алерт. Если для (животное, геозона, тип) уже есть открытый алерт,
// уникальный индекс отбрасывает вставку и возвращается created=false.
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) (bool, error) {
	alert.ApplyDefaults(time.Now())

	var dangerType *string
	if alert.DangerType != "" {
		dangerType = &alert.DangerType
	}

	query := `
		INSERT INTO alerts (
			animal_id, alert_type, description,
			threshold_latitude, threshold_longitude, threshold_radius,
			location_latitude, location_longitude,
			status, timestamp, geofence_id, danger_zone_id, danger_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT DO NOTHING
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		alert.AnimalID,
		alert.AlertType,
		alert.Description,
		alert.Threshold.Latitude,
		alert.Threshold.Longitude,
		alert.Threshold.Radius,
		alert.Location.Latitude,
		alert.Location.Longitude,
		alert.Status,
		alert.Timestamp,
		alert.GeofenceID,
		alert.DangerZone,
		dangerType,
	).Scan(&alert.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create alert: %w", err)
	}
	return true, nil
}

// FindOpen возвращает открытый алерт по ключу или nil. Для алертов скорости geofenceID = nil.
func (r *AlertRepository) FindOpen(ctx context.Context, animalID uuid.UUID, geofenceID *uuid.UUID, alertType models.AlertType) (*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE animal_id = $1
			AND geofence_id IS NOT DISTINCT FROM $2::uuid
			AND alert_type = $3
			AND status = 'triggered'
		LIMIT 1;
	`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, animalID, geofenceID, alertType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open alert: %w", err)
	}
	return alert, nil
}

// Resolve закрывает открытый алерт. Закрытый алерт повторно не закрывается.
func (r *AlertRepository) Resolve(ctx context.Context, id uuid.UUID, location models.Coordinate, resolvedAt time.Time) (*models.Alert, error) {
	query := `
		UPDATE alerts SET
			status = 'resolved',
			resolved_at = $2,
			resolved_latitude = $3,
			resolved_longitude = $4
		WHERE id = $1 AND status = 'triggered'
		RETURNING ` + alertColumns + `;
	`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, id, resolvedAt, location.Latitude, location.Longitude))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFoundError("alert", id.String())
		}
		return nil, fmt.Errorf("failed to resolve alert: %w", err)
	}
	return alert, nil
}

// ListByAnimal возвращает алерты животного, пустой статус означает любой
func (r *AlertRepository) ListByAnimal(ctx context.Context, animalID uuid.UUID, status models.AlertStatus) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE animal_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY timestamp DESC;
	`
	rows, err := r.db.Query(ctx, query, animalID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}

func scanAlert(row pgx.Row) (*models.Alert, error) {
	alert := &models.Alert{}
	var (
		dangerType        *string
		resolvedLatitude  *float64
		resolvedLongitude *float64
	)
	err := row.Scan(
		&alert.ID,
		&alert.AnimalID,
		&alert.AlertType,
		&alert.Description,
		&alert.Threshold.Latitude,
		&alert.Threshold.Longitude,
		&alert.Threshold.Radius,
		&alert.Location.Latitude,
		&alert.Location.Longitude,
		&alert.Status,
		&alert.Timestamp,
		&alert.GeofenceID,
		&alert.DangerZone,
		&dangerType,
		&alert.ResolvedAt,
		&resolvedLatitude,
		&resolvedLongitude,
	)
	if err != nil {
		return nil, err
	}
	if dangerType != nil {
		alert.DangerType = *dangerType
	}
	if resolvedLatitude != nil && resolvedLongitude != nil {
		alert.ResolvedLocation = &models.Coordinate{Latitude: *resolvedLatitude, Longitude: *resolvedLongitude}
	}
	return alert, nil
}
