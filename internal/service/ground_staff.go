package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/agency_dispatch_system/internal/apperror"
	"github.com/shenikar/agency_dispatch_system/internal/auth"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=ground_staff.go -destination=mocks/ground_staff_mock.go -package=mocks

// GroundStaffRepository определяет контракт для работы с бд сотрудников
type GroundStaffRepository interface {
	Create(ctx context.Context, staff *models.GroundStaff) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.GroundStaff, error)
	GetByNumber(ctx context.Context, number string) (*models.GroundStaff, error)
	ListByAgency(ctx context.Context, agencyID string) ([]*models.GroundStaff, error)
}

// GroundStaffService определяет контракт управления сотрудниками агентств
type GroundStaffService interface {
	Add(ctx context.Context, input models.AddGroundStaffInput) (uuid.UUID, error)
	ListByAgency(ctx context.Context, agencyID string) ([]*models.GroundStaff, error)
	Login(ctx context.Context, mobile, password string) (*models.StaffLoginResult, error)
	TasksFor(ctx context.Context, agencyID, groundStaffID string) ([]*models.Event, error)
}

type groundStaffService struct {
	staff    GroundStaffRepository
	agencies AgencyRepository
	events   EventRepository
	tokens   TokenIssuer
	logger   *logrus.Logger
}

func NewGroundStaffService(staff GroundStaffRepository, agencies AgencyRepository, events EventRepository, tokens TokenIssuer, logger *logrus.Logger) GroundStaffService {
	return &groundStaffService{
		staff:    staff,
		agencies: agencies,
		events:   events,
		tokens:   tokens,
		logger:   logger,
	}
}

// Add добавляет сотрудника существующему агентству
func (s *groundStaffService) Add(ctx context.Context, input models.AddGroundStaffInput) (uuid.UUID, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "ground_staff",
		"method":    "Add",
		"agency_id": input.AgencyID,
	})
	log.Info("Attempting to add ground staff")

	if err := validateRequired(input.Name, "name"); err != nil {
		return uuid.Nil, err
	}
	if err := validateMobile(input.Number); err != nil {
		return uuid.Nil, err
	}
	if err := validateRequired(input.Address, "address"); err != nil {
		return uuid.Nil, err
	}
	if err := validateRequired(input.AgencyID, "agencyId"); err != nil {
		return uuid.Nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return uuid.Nil, err
	}

	if _, err := s.agencies.GetByAgencyID(ctx, input.AgencyID); err != nil {
		log.WithError(err).Warn("Attempted to add ground staff to a non-existent agency")
		return uuid.Nil, storageError("could not add ground staff", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return uuid.Nil, fmt.Errorf("service: %w", err)
	}

	staff := &models.GroundStaff{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Number:       input.Number,
		Address:      strings.TrimSpace(input.Address),
		AgencyID:     input.AgencyID,
		PasswordHash: hash,
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		log.WithError(err).Error("Failed to create ground staff in repository")
		return uuid.Nil, storageError("could not add ground staff", err)
	}

	log.WithField("ground_staff_id", staff.ID).Info("Ground staff added successfully")
	return staff.ID, nil
}

// ListByAgency возвращает сотрудников агентства
func (s *groundStaffService) ListByAgency(ctx context.Context, agencyID string) ([]*models.GroundStaff, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "ground_staff",
		"method":    "ListByAgency",
		"agency_id": agencyID,
	})

	staff, err := s.staff.ListByAgency(ctx, agencyID)
	if err != nil {
		log.WithError(err).Error("Failed to list ground staff from repository")
		return nil, storageError("could not list ground staff", err)
	}

	log.WithField("count", len(staff)).Info("Ground staff listed successfully")
	return staff, nil
}

// Login аутентифицирует сотрудника по номеру телефона
func (s *groundStaffService) Login(ctx context.Context, mobile, password string) (*models.StaffLoginResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ground_staff",
		"method":  "Login",
	})
	log.Info("Ground staff login attempt")

	if validateMobile(mobile) != nil || password == "" {
		return nil, ErrInvalidCredentials
	}

	staff, err := s.staff.GetByNumber(ctx, mobile)
	if err != nil {
		if errors.Is(err, ErrGroundStaffNotFound) {
			auth.BurnCompare(password)
			log.Warn("Login failed")
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to load ground staff by number")
		return nil, storageError("could not authenticate ground staff", err)
	}

	if ok, _ := auth.VerifyPassword(staff.PasswordHash, password); !ok {
		log.Warn("Login failed")
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(auth.Claims{
		AgencyID:      staff.AgencyID,
		GroundStaffID: staff.ID.String(),
		MobileNumber:  staff.Number,
		Role:          auth.RoleGroundStaff,
	})
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("ground_staff_id", staff.ID).Info("Ground staff logged in successfully")
	return &models.StaffLoginResult{Token: token, ExpiresAt: claims.ExpiresAt.Time, Staff: staff}, nil
}

// TasksFor возвращает события агентства, назначенные конкретному сотруднику
func (s *groundStaffService) TasksFor(ctx context.Context, agencyID, groundStaffID string) ([]*models.Event, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "ground_staff",
		"method":          "TasksFor",
		"agency_id":       agencyID,
		"ground_staff_id": groundStaffID,
	})

	if err := validateRequired(agencyID, "agencyId"); err != nil {
		return nil, err
	}
	if err := validateRequired(groundStaffID, "groundStaffId"); err != nil {
		return nil, apperror.Validation("ground staff id is required")
	}

	events, err := s.events.ListByGroundStaff(ctx, agencyID, groundStaffID)
	if err != nil {
		log.WithError(err).Error("Failed to list ground staff tasks")
		return nil, storageError("could not list ground staff tasks", err)
	}

	log.WithField("count", len(events)).Info("Ground staff tasks listed successfully")
	return events, nil
}
