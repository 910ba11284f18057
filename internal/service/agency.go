package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shenikar/agency_dispatch_system/internal/apperror"
	"github.com/shenikar/agency_dispatch_system/internal/auth"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=agency.go -destination=mocks/agency_mock.go -package=mocks

const (
	maxAgencyIDAttempts = 10
	defaultSearchRadius = 1000.0
	defaultSearchLimit  = 50
	maxSearchLimit      = 200
)

// AgencyRepository определяет контракт для работы с бд агентств
type AgencyRepository interface {
	Create(ctx context.Context, agency *models.Agency) error
	GetByAgencyID(ctx context.Context, agencyID string) (*models.Agency, error)
	GetByMobile(ctx context.Context, mobile string) (*models.Agency, error)
	UpdatePassword(ctx context.Context, agencyID, passwordHash string) (bool, error)
	Update(ctx context.Context, agencyID string, update models.AgencyUpdate) (bool, error)
	Delete(ctx context.Context, agencyID string) (bool, error)
	List(ctx context.Context, filter models.AgencyFilter) ([]*models.Agency, error)
	FindByPoint(ctx context.Context, search models.PointSearch) ([]*models.AgencyMatch, error)
}

// TokenIssuer выпускает подписанные токены доступа
type TokenIssuer interface {
	Issue(claims auth.Claims) (string, *auth.Claims, error)
}

// TokenRevoker отзывает выпущенные токены
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// AgencyService определяет контракт реестра агентств
type AgencyService interface {
	Create(ctx context.Context, input models.CreateAgencyInput) (string, error)
	Authenticate(ctx context.Context, mobile, password string) (*models.LoginResult, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	ResetPassword(ctx context.Context, agencyID, newPassword string) error
	Update(ctx context.Context, agencyID string, input models.UpdateAgencyInput) (bool, error)
	Delete(ctx context.Context, agencyID string) (bool, error)
	Get(ctx context.Context, agencyID string) (*models.Agency, error)
	List(ctx context.Context, filter models.AgencyFilter) ([]*models.Agency, error)
	FindByPoint(ctx context.Context, search models.PointSearch) ([]*models.AgencyMatch, error)
}

type agencyService struct {
	repo        AgencyRepository
	tokens      TokenIssuer
	revoker     TokenRevoker
	logger      *logrus.Logger
	newAgencyID func() string
}

func NewAgencyService(repo AgencyRepository, tokens TokenIssuer, revoker TokenRevoker, logger *logrus.Logger) AgencyService {
	return &agencyService{
		repo:        repo,
		tokens:      tokens,
		revoker:     revoker,
		logger:      logger,
		newAgencyID: generateAgencyID,
	}
}

func generateAgencyID() string {
	return fmt.Sprintf("agency-%d", 1000+rand.Intn(9000))
}

// Create регистрирует агентство и возвращает его AgencyId
func (s *agencyService) Create(ctx context.Context, input models.CreateAgencyInput) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "agency",
		"method":  "Create",
		"name":    input.Name,
	})
	log.Info("Attempting to create a new agency")

	agency, err := s.buildAgency(input)
	if err != nil {
		log.WithError(err).Warn("Agency validation failed")
		return "", err
	}

	for attempt := 1; attempt <= maxAgencyIDAttempts; attempt++ {
		agency.AgencyID = s.newAgencyID()
		err = s.repo.Create(ctx, agency)
		if err == nil {
			log.WithField("agency_id", agency.AgencyID).Info("Agency created successfully")
			return agency.AgencyID, nil
		}
		if !errors.Is(err, ErrAgencyIDTaken) {
			log.WithError(err).Error("Failed to create agency in repository")
			return "", storageError("could not create agency", err)
		}
		log.WithField("attempt", attempt).Warn("Generated agency id collided, retrying")
	}

	log.Error("Exhausted agency id attempts")
	return "", fmt.Errorf("service: could not allocate agency id: %w", ErrAgencyIDTaken)
}

func (s *agencyService) buildAgency(input models.CreateAgencyInput) (*models.Agency, error) {
	if err := validateRequired(input.Name, "agency name"); err != nil {
		return nil, err
	}
	if err := validateMobile(input.Mobile); err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}
	if input.Latitude == nil || input.Longitude == nil {
		return nil, apperror.Validation("location is required: lat and lng must be numeric values")
	}
	location, err := geo.NewPoint(*input.Latitude, *input.Longitude)
	if err != nil {
		return nil, apperror.Validation("%v", err)
	}

	agency := &models.Agency{
		AgencyName:          input.Name,
		MobileNumber:        input.Mobile,
		Location:            location,
		EventResponsibleFor: normalizeTags(input.Tags),
	}

	if input.Jurisdiction != nil {
		j, err := geo.NewJurisdiction(*input.Jurisdiction)
		if err != nil {
			return nil, apperror.Validation("%v", err)
		}
		agency.Jurisdiction = j
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	agency.PasswordHash = hash
	return agency, nil
}

// Authenticate проверяет учетные данные. Любая неудача возвращает одну и ту же ошибку.
func (s *agencyService) Authenticate(ctx context.Context, mobile, password string) (*models.LoginResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "agency",
		"method":  "Authenticate",
	})
	log.Info("Agency login attempt")

	if validateMobile(mobile) != nil || password == "" {
		log.Warn("Malformed credentials")
		return nil, ErrInvalidCredentials
	}

	agency, err := s.repo.GetByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, ErrAgencyNotFound) {
			auth.BurnCompare(password)
			log.Warn("Login failed")
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to load agency by mobile")
		return nil, storageError("could not authenticate agency", err)
	}

	ok, needsRehash := auth.VerifyPassword(agency.PasswordHash, password)
	if !ok {
		log.Warn("Login failed")
		return nil, ErrInvalidCredentials
	}

	if needsRehash {
		s.rehashLegacyPassword(ctx, log, agency.AgencyID, password)
	}

	token, claims, err := s.tokens.Issue(auth.Claims{
		AgencyID:     agency.AgencyID,
		MobileNumber: agency.MobileNumber,
		Role:         auth.RoleAgency,
	})
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("agency_id", agency.AgencyID).Info("Agency logged in successfully")
	return &models.LoginResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		Agency:    agency,
	}, nil
}

func (s *agencyService) rehashLegacyPassword(ctx context.Context, log *logrus.Entry, agencyID, password string) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.WithError(err).Warn("Failed to rehash legacy password")
		return
	}
	if _, err := s.repo.UpdatePassword(ctx, agencyID, hash); err != nil {
		log.WithError(err).Warn("Failed to store rehashed legacy password")
		return
	}
	log.Info("Legacy plaintext password rehashed")
}

// Logout отзывает токен до истечения его срока
func (s *agencyService) Logout(ctx context.Context, claims *auth.Claims) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "agency",
		"method":    "Logout",
		"agency_id": claims.AgencyID,
	})
	if claims.ExpiresAt == nil {
		return apperror.Validation("token has no expiry")
	}
	if err := s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		log.WithError(err).Error("Failed to revoke token")
		return apperror.Dependency("service: could not revoke token", err)
	}
	log.Info("Agency logged out")
	return nil
}

// ResetPassword перезаписывает хэш пароля существующего агентства
func (s *agencyService) ResetPassword(ctx context.Context, agencyID, newPassword string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "agency",
		"method":    "ResetPassword",
		"agency_id": agencyID,
	})
	log.Info("Attempting to reset agency password")

	if err := validatePassword(newPassword); err != nil {
		return err
	}
	if _, err := s.repo.GetByAgencyID(ctx, agencyID); err != nil {
		log.WithError(err).Warn("Attempted to reset password of a non-existent agency")
		return storageError("could not reset password", err)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if _, err := s.repo.UpdatePassword(ctx, agencyID, hash); err != nil {
		log.WithError(err).Error("Failed to update password in repository")
		return storageError("could not reset password", err)
	}

	log.Info("Agency password reset successfully")
	return nil
}

// Update применяет частичное обновление и сообщает, изменилось ли что-то
func (s *agencyService) Update(ctx context.Context, agencyID string, input models.UpdateAgencyInput) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "agency",
		"method":    "Update",
		"agency_id": agencyID,
	})
	log.Info("Attempting to update agency")

	update, err := buildAgencyUpdate(input)
	if err != nil {
		log.WithError(err).Warn("Agency update validation failed")
		return false, err
	}
	if update.IsEmpty() {
		log.Info("Nothing to update")
		return false, nil
	}

	modified, err := s.repo.Update(ctx, agencyID, update)
	if err != nil {
		log.WithError(err).Error("Failed to update agency in repository")
		return false, storageError("could not update agency", err)
	}

	log.WithField("modified", modified).Info("Agency update finished")
	return modified, nil
}

func buildAgencyUpdate(input models.UpdateAgencyInput) (models.AgencyUpdate, error) {
	var update models.AgencyUpdate

	if input.Name != nil {
		if err := validateRequired(*input.Name, "agency name"); err != nil {
			return update, err
		}
		update.AgencyName = input.Name
	}
	if input.Mobile != nil {
		if err := validateMobile(*input.Mobile); err != nil {
			return update, err
		}
		update.MobileNumber = input.Mobile
	}
	if input.Tags != nil {
		update.EventResponsibleFor = normalizeTags(input.Tags)
	}
	if input.Password != nil {
		if err := validatePassword(*input.Password); err != nil {
			return update, err
		}
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return update, fmt.Errorf("service: %w", err)
		}
		update.PasswordHash = &hash
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return update, apperror.Validation("lat and lng must be provided together")
	}
	if input.Latitude != nil {
		p, err := geo.NewPoint(*input.Latitude, *input.Longitude)
		if err != nil {
			return update, apperror.Validation("%v", err)
		}
		update.Location = &p
	}
	if input.RemoveJurisdiction && input.Jurisdiction != nil {
		return update, apperror.Validation("jurisdiction cannot be set and removed at once")
	}
	if input.Jurisdiction != nil {
		j, err := geo.NewJurisdiction(*input.Jurisdiction)
		if err != nil {
			return update, apperror.Validation("%v", err)
		}
		update.Jurisdiction = j
	}
	update.RemoveJurisdiction = input.RemoveJurisdiction
	return update, nil
}

// Delete удаляет агентство вместе с его сотрудниками
func (s *agencyService) Delete(ctx context.Context, agencyID string) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "agency",
		"method":    "Delete",
		"agency_id": agencyID,
	})
	log.Info("Attempting to delete agency")

	deleted, err := s.repo.Delete(ctx, agencyID)
	if err != nil {
		log.WithError(err).Error("Failed to delete agency in repository")
		return false, storageError("could not delete agency", err)
	}

	log.WithField("deleted", deleted).Info("Agency delete finished")
	return deleted, nil
}

// Get возвращает агентство по AgencyId
func (s *agencyService) Get(ctx context.Context, agencyID string) (*models.Agency, error) {
	agency, err := s.repo.GetByAgencyID(ctx, agencyID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":   "agency",
			"method":    "Get",
			"agency_id": agencyID,
		}).WithError(err).Warn("Failed to get agency")
		return nil, storageError("could not get agency", err)
	}
	return agency, nil
}

// List возвращает агентства по фильтру
func (s *agencyService) List(ctx context.Context, filter models.AgencyFilter) ([]*models.Agency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "agency",
		"method":  "List",
		"tag":     filter.Tag,
		"type":    filter.Type,
	})

	if filter.Type != "" && filter.Type != models.AgencyTypeLocation && filter.Type != models.AgencyTypeJurisdiction {
		return nil, apperror.Validation("type must be %q or %q", models.AgencyTypeLocation, models.AgencyTypeJurisdiction)
	}

	agencies, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list agencies from repository")
		return nil, storageError("could not list agencies", err)
	}

	log.WithField("count", len(agencies)).Info("Agencies listed successfully")
	return agencies, nil
}

// FindByPoint ищет агентства рядом с точкой или по юрисдикции
func (s *agencyService) FindByPoint(ctx context.Context, search models.PointSearch) ([]*models.AgencyMatch, error) {
	if search.Mode == "" {
		search.Mode = models.SearchModeLocation
	}
	if search.RadiusMeters == 0 {
		search.RadiusMeters = defaultSearchRadius
	}
	if search.Limit <= 0 {
		search.Limit = defaultSearchLimit
	}
	if search.Limit > maxSearchLimit {
		search.Limit = maxSearchLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "agency",
		"method":  "FindByPoint",
		"mode":    search.Mode,
		"radius":  search.RadiusMeters,
	})

	if search.Mode != models.SearchModeLocation && search.Mode != models.SearchModeJurisdiction {
		return nil, apperror.Validation("mode must be %q or %q", models.SearchModeLocation, models.SearchModeJurisdiction)
	}
	if search.RadiusMeters < 0 {
		return nil, apperror.Validation("radius must be positive")
	}
	if err := search.Point.Validate(); err != nil {
		return nil, apperror.Validation("%v", err)
	}

	matches, err := s.repo.FindByPoint(ctx, search)
	if err != nil {
		log.WithError(err).Error("Failed to search agencies by point")
		return nil, storageError("could not search agencies", err)
	}

	log.WithField("count", len(matches)).Info("Agency search completed")
	return matches, nil
}
