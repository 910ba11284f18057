package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/shenikar/agency_dispatch_system/internal/service"
	"github.com/shenikar/agency_dispatch_system/pkg/postgres"
)

type ImageRepository struct {
	db postgres.Pool
}

func NewImageRepository(db postgres.Pool) service.ImageRepository {
	return &ImageRepository{db: db}
}

// Create сохраняет запись о загруженном снимке
func (r *ImageRepository) Create(ctx context.Context, image *models.Image) error {
	location, err := image.Location.EWKB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO images (incident_id, user_id, location, "timestamp", image_url, exif, status)
		VALUES ($1, $2, ST_GeomFromEWKB($3)::geography, $4, NULLIF($5, ''), $6, $7)
		RETURNING id, created_at;
	`
	var exif []byte
	if len(image.Exif) > 0 {
		exif = image.Exif
	}
	err = r.db.QueryRow(ctx, query,
		image.IncidentID,
		image.UserID,
		location,
		image.Timestamp,
		image.ImageURL,
		exif,
		image.Status,
	).Scan(&image.ID, &image.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}

// LinkEvent привязывает снимок к событию и помечает его обработанным
func (r *ImageRepository) LinkEvent(ctx context.Context, incidentID uuid.UUID, eventID string) (bool, error) {
	query := `UPDATE images SET event_id = $2, status = $3 WHERE incident_id = $1;`

	tag, err := r.db.Exec(ctx, query, incidentID, eventID, models.ImageStatusProcessed)
	if err != nil {
		return false, fmt.Errorf("failed to link image to event: %w", translateError(err))
	}
	return tag.RowsAffected() > 0, nil
}

// ListLatest возвращает последние загруженные снимки
func (r *ImageRepository) ListLatest(ctx context.Context, limit int) ([]*models.Image, error) {
	query := `
		SELECT
			id,
			incident_id,
			user_id,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			"timestamp",
			COALESCE(image_url, ''),
			exif,
			status,
			event_id,
			created_at
		FROM images
		ORDER BY created_at DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	images := make([]*models.Image, 0)
	for rows.Next() {
		image := &models.Image{}
		var exif []byte
		err := rows.Scan(
			&image.ID,
			&image.IncidentID,
			&image.UserID,
			&image.Location.Latitude,
			&image.Location.Longitude,
			&image.Timestamp,
			&image.ImageURL,
			&exif,
			&image.Status,
			&image.EventID,
			&image.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		if len(exif) > 0 {
			image.Exif = exif
		}
		images = append(images, image)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating images: %w", err)
	}
	return images, nil
}
