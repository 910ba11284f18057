package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/shenikar/agency_dispatch_system/internal/service"
	"github.com/shenikar/agency_dispatch_system/pkg/postgres"
)

const agencyColumns = `
	agency_id,
	agency_name,
	mobile_number,
	password_hash,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	ST_AsEWKB(jurisdiction::geometry) AS jurisdiction,
	event_responsible_for,
	created_at,
	updated_at`

// tagFilter - совпадение тега без учета регистра; пустой параметр отключает фильтр
const tagFilter = `($%[1]d = '' OR EXISTS (
		SELECT 1 FROM unnest(event_responsible_for) AS t(tag) WHERE lower(t.tag) = lower($%[1]d)
	))`

type AgencyRepository struct {
	db postgres.Pool
}

func NewAgencyRepository(db postgres.Pool) service.AgencyRepository {
	return &AgencyRepository{db: db}
}

// Create сохраняет новое агентство. Конфликты agency_id и mobile_number
// возвращаются как service.ErrAgencyIDTaken и service.ErrMobileTaken.
func (r *AgencyRepository) Create(ctx context.Context, agency *models.Agency) error {
	location, err := agency.Location.EWKB()
	if err != nil {
		return err
	}
	jurisdiction, err := jurisdictionEWKB(agency.Jurisdiction)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO agencies (agency_id, agency_name, mobile_number, password_hash, location, jurisdiction, event_responsible_for)
		VALUES ($1, $2, $3, $4, ST_GeomFromEWKB($5)::geography, ST_GeomFromEWKB($6)::geography, $7)
		RETURNING created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		agency.AgencyID,
		agency.AgencyName,
		agency.MobileNumber,
		agency.PasswordHash,
		location,
		jurisdiction,
		tagsOrEmpty(agency.EventResponsibleFor),
	).Scan(&agency.CreatedAt, &agency.UpdatedAt)
	if err != nil {
		if translated := translateError(err); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create agency: %w", err)
	}
	return nil
}

// GetByAgencyID возвращает агентство по его AgencyId
func (r *AgencyRepository) GetByAgencyID(ctx context.Context, agencyID string) (*models.Agency, error) {
	query := `SELECT` + agencyColumns + ` FROM agencies WHERE agency_id = $1;`

	agency, err := scanAgency(r.db.QueryRow(ctx, query, agencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrAgencyNotFound
		}
		return nil, fmt.Errorf("failed to get agency by id: %w", err)
	}
	return agency, nil
}

// GetByMobile возвращает агентство по номеру телефона
func (r *AgencyRepository) GetByMobile(ctx context.Context, mobile string) (*models.Agency, error) {
	query := `SELECT` + agencyColumns + ` FROM agencies WHERE mobile_number = $1;`

	agency, err := scanAgency(r.db.QueryRow(ctx, query, mobile))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrAgencyNotFound
		}
		return nil, fmt.Errorf("failed to get agency by mobile: %w", err)
	}
	return agency, nil
}

func (r *AgencyRepository) UpdatePassword(ctx context.Context, agencyID, passwordHash string) (bool, error) {
	query := `UPDATE agencies SET password_hash = $2, updated_at = NOW() WHERE agency_id = $1;`

	tag, err := r.db.Exec(ctx, query, agencyID, passwordHash)
	if err != nil {
		return false, fmt.Errorf("failed to update agency password: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// updateBuilder собирает SET и условие "хоть одно поле изменилось".
// Шаблоны используют %[1]d как номер параметра.
type updateBuilder struct {
	sets    []string
	changed []string
	args    []any
}

func (b *updateBuilder) add(set, changed string, value any) {
	b.args = append(b.args, value)
	n := len(b.args)
	b.sets = append(b.sets, fmt.Sprintf(set, n))
	b.changed = append(b.changed, fmt.Sprintf(changed, n))
}

// Update применяет частичное обновление. Возвращает false, если ни одно поле
// фактически не изменилось, и service.ErrAgencyNotFound, если агентства нет.
func (r *AgencyRepository) Update(ctx context.Context, agencyID string, update models.AgencyUpdate) (bool, error) {
	if update.IsEmpty() {
		return false, nil
	}

	b := &updateBuilder{args: []any{agencyID}}
	if update.AgencyName != nil {
		b.add("agency_name = $%[1]d", "agency_name IS DISTINCT FROM $%[1]d", *update.AgencyName)
	}
	if update.MobileNumber != nil {
		b.add("mobile_number = $%[1]d", "mobile_number IS DISTINCT FROM $%[1]d", *update.MobileNumber)
	}
	if update.EventResponsibleFor != nil {
		b.add("event_responsible_for = $%[1]d", "event_responsible_for IS DISTINCT FROM $%[1]d", update.EventResponsibleFor)
	}
	if update.PasswordHash != nil {
		b.add("password_hash = $%[1]d", "password_hash IS DISTINCT FROM $%[1]d", *update.PasswordHash)
	}
	if update.Location != nil {
		location, err := update.Location.EWKB()
		if err != nil {
			return false, err
		}
		b.add("location = ST_GeomFromEWKB($%[1]d)::geography",
			"ST_AsEWKB(location::geometry) IS DISTINCT FROM $%[1]d", location)
	}
	if update.Jurisdiction != nil {
		jurisdiction, err := update.Jurisdiction.EWKB()
		if err != nil {
			return false, err
		}
		b.add("jurisdiction = ST_GeomFromEWKB($%[1]d)::geography",
			"ST_AsEWKB(jurisdiction::geometry) IS DISTINCT FROM $%[1]d", jurisdiction)
	}
	if update.RemoveJurisdiction {
		b.sets = append(b.sets, "jurisdiction = NULL")
		b.changed = append(b.changed, "jurisdiction IS NOT NULL")
	}

	query := fmt.Sprintf(
		`UPDATE agencies SET %s, updated_at = NOW() WHERE agency_id = $1 AND (%s);`,
		strings.Join(b.sets, ", "),
		strings.Join(b.changed, " OR "),
	)

	tag, err := r.db.Exec(ctx, query, b.args...)
	if err != nil {
		if translated := translateError(err); translated != err {
			return false, translated
		}
		return false, fmt.Errorf("failed to update agency: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM agencies WHERE agency_id = $1);`, agencyID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check agency existence: %w", err)
	}
	if !exists {
		return false, service.ErrAgencyNotFound
	}
	return false, nil
}

// Delete удаляет агентство. Сотрудники удаляются каскадно (ON DELETE CASCADE).
func (r *AgencyRepository) Delete(ctx context.Context, agencyID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM agencies WHERE agency_id = $1;`, agencyID)
	if err != nil {
		return false, fmt.Errorf("failed to delete agency: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List возвращает агентства с фильтром по тегу и типу
func (r *AgencyRepository) List(ctx context.Context, filter models.AgencyFilter) ([]*models.Agency, error) {
	query := `SELECT` + agencyColumns + `
		FROM agencies
		WHERE ` + fmt.Sprintf(tagFilter, 1) + `
		  AND ($2 = '' OR agency_type = $2)
		ORDER BY created_at;`

	rows, err := r.db.Query(ctx, query, filter.Tag, filter.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to list agencies: %w", err)
	}
	defer rows.Close()

	agencies := make([]*models.Agency, 0)
	for rows.Next() {
		agency, err := scanAgency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agency: %w", err)
		}
		agencies = append(agencies, agency)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating agencies: %w", err)
	}
	return agencies, nil
}

// FindByPoint ищет агентства в радиусе от точки (режим location, по
// возрастанию расстояния) или агентства, чья юрисдикция покрывает точку.
func (r *AgencyRepository) FindByPoint(ctx context.Context, search models.PointSearch) ([]*models.AgencyMatch, error) {
	point, err := search.Point.EWKB()
	if err != nil {
		return nil, err
	}

	var (
		query string
		args  []any
	)
	withDistance := search.Mode != models.SearchModeJurisdiction
	if withDistance {
		query = `SELECT` + agencyColumns + `,
				ST_Distance(location, ST_GeomFromEWKB($1)::geography) AS distance
			FROM agencies
			WHERE ST_DWithin(location, ST_GeomFromEWKB($1)::geography, $2)
			  AND ` + fmt.Sprintf(tagFilter, 3) + `
			ORDER BY distance
			LIMIT $4;`
		args = []any{point, search.RadiusMeters, search.Tag, search.Limit}
	} else {
		query = `SELECT` + agencyColumns + `
			FROM agencies
			WHERE jurisdiction IS NOT NULL
			  AND ST_Covers(jurisdiction, ST_GeomFromEWKB($1)::geography)
			  AND ` + fmt.Sprintf(tagFilter, 2) + `
			ORDER BY created_at
			LIMIT $3;`
		args = []any{point, search.Tag, search.Limit}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find agencies by point: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.AgencyMatch, 0)
	for rows.Next() {
		var (
			agency   *models.Agency
			distance float64
		)
		if withDistance {
			agency, err = scanAgency(rows, &distance)
		} else {
			agency, err = scanAgency(rows)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan agency match: %w", err)
		}

		match := &models.AgencyMatch{Agency: *agency}
		if withDistance {
			match.DistanceMeters = &distance
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating agency matches: %w", err)
	}
	return matches, nil
}

// scanAgency читает колонки agencyColumns и дополнительные колонки extra
func scanAgency(row pgx.Row, extra ...any) (*models.Agency, error) {
	agency := &models.Agency{}
	var jurisdiction []byte

	dest := []any{
		&agency.AgencyID,
		&agency.AgencyName,
		&agency.MobileNumber,
		&agency.PasswordHash,
		&agency.Location.Latitude,
		&agency.Location.Longitude,
		&jurisdiction,
		&agency.EventResponsibleFor,
		&agency.CreatedAt,
		&agency.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	if len(jurisdiction) > 0 {
		j, err := geo.JurisdictionFromEWKB(jurisdiction)
		if err != nil {
			return nil, err
		}
		agency.Jurisdiction = j
	}
	if agency.EventResponsibleFor == nil {
		agency.EventResponsibleFor = []string{}
	}
	return agency, nil
}

func jurisdictionEWKB(j *geo.Jurisdiction) ([]byte, error) {
	if j == nil {
		return nil, nil
	}
	return j.EWKB()
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
