package service

import "github.com/shenikar/agency_dispatch_system/internal/apperror"

// Доменные ошибки. Репозитории возвращают их напрямую или обернутыми через %w.
var (
	ErrAgencyNotFound      = apperror.New(apperror.KindNotFound, "agency not found")
	ErrEventNotFound       = apperror.New(apperror.KindNotFound, "event not found")
	ErrGroundStaffNotFound = apperror.New(apperror.KindNotFound, "ground staff not found")
	ErrConfigNotFound      = apperror.New(apperror.KindNotFound, "config key not found")
	ErrUserNotFound        = apperror.New(apperror.KindNotFound, "user not found")

	ErrMobileTaken    = apperror.New(apperror.KindConflict, "mobile number already registered")
	ErrAgencyIDTaken  = apperror.New(apperror.KindConflict, "agency id already taken")
	ErrEmailTaken     = apperror.New(apperror.KindConflict, "User already exists")
	ErrStatusConflict = apperror.New(apperror.KindConflict, "event status was changed by another request")

	ErrInvalidCredentials = apperror.New(apperror.KindAuth, "Invalid mobile number or password")
	ErrAgencyMismatch     = apperror.New(apperror.KindAuth, "Agency mismatch")
	ErrInvalidUserLogin   = apperror.New(apperror.KindAuth, "Invalid email or password")
)
