package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/agency_dispatch_system/internal/service"
)

// Имена ограничений из migrations/000001_init.up.sql
const (
	constraintAgencyID          = "agencies_agency_id_key"
	constraintAgencyMobile      = "agencies_mobile_number_key"
	constraintGroundStaffNumber = "ground_staff_number_key"
	constraintGroundStaffAgency = "ground_staff_agency_id_fkey"
	constraintImageEvent        = "images_event_id_fkey"
	constraintUserEmail         = "users_email_key"
)

// translateError превращает нарушения ограничений в доменные ошибки.
// Остальные ошибки возвращаются без изменений.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case constraintAgencyID:
			return service.ErrAgencyIDTaken
		case constraintAgencyMobile, constraintGroundStaffNumber:
			return service.ErrMobileTaken
		case constraintUserEmail:
			return service.ErrEmailTaken
		}
	case pgerrcode.ForeignKeyViolation:
		switch pgErr.ConstraintName {
		case constraintGroundStaffAgency:
			return service.ErrAgencyNotFound
		case constraintImageEvent:
			return service.ErrEventNotFound
		}
	}
	return err
}
