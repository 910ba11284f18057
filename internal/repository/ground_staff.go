package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/shenikar/agency_dispatch_system/internal/service"
	"github.com/shenikar/agency_dispatch_system/pkg/postgres"
)

const groundStaffColumns = `id, name, number, address, agency_id, password_hash, created_at`

type GroundStaffRepository struct {
	db postgres.Pool
}

func NewGroundStaffRepository(db postgres.Pool) service.GroundStaffRepository {
	return &GroundStaffRepository{db: db}
}

// Create сохраняет сотрудника. Номер телефона уникален среди всех сотрудников.
func (r *GroundStaffRepository) Create(ctx context.Context, staff *models.GroundStaff) error {
	query := `
		INSERT INTO ground_staff (id, name, number, address, agency_id, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		staff.ID,
		staff.Name,
		staff.Number,
		staff.Address,
		staff.AgencyID,
		staff.PasswordHash,
	).Scan(&staff.CreatedAt)
	if err != nil {
		if translated := translateError(err); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create ground staff: %w", err)
	}
	return nil
}

func (r *GroundStaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GroundStaff, error) {
	query := `SELECT ` + groundStaffColumns + ` FROM ground_staff WHERE id = $1;`

	staff, err := scanGroundStaff(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrGroundStaffNotFound
		}
		return nil, fmt.Errorf("failed to get ground staff by id: %w", err)
	}
	return staff, nil
}

func (r *GroundStaffRepository) GetByNumber(ctx context.Context, number string) (*models.GroundStaff, error) {
	query := `SELECT ` + groundStaffColumns + ` FROM ground_staff WHERE number = $1;`

	staff, err := scanGroundStaff(r.db.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrGroundStaffNotFound
		}
		return nil, fmt.Errorf("failed to get ground staff by number: %w", err)
	}
	return staff, nil
}

// ListByAgency возвращает сотрудников агентства в порядке добавления
func (r *GroundStaffRepository) ListByAgency(ctx context.Context, agencyID string) ([]*models.GroundStaff, error) {
	query := `SELECT ` + groundStaffColumns + ` FROM ground_staff WHERE agency_id = $1 ORDER BY created_at;`

	rows, err := r.db.Query(ctx, query, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ground staff: %w", err)
	}
	defer rows.Close()

	staff := make([]*models.GroundStaff, 0)
	for rows.Next() {
		member, err := scanGroundStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ground staff: %w", err)
		}
		staff = append(staff, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ground staff: %w", err)
	}
	return staff, nil
}

func scanGroundStaff(row pgx.Row) (*models.GroundStaff, error) {
	staff := &models.GroundStaff{}
	err := row.Scan(
		&staff.ID,
		&staff.Name,
		&staff.Number,
		&staff.Address,
		&staff.AgencyID,
		&staff.PasswordHash,
		&staff.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return staff, nil
}
