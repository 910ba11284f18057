package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/agency_dispatch_system/internal/auth"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=user.go -destination=mocks/user_mock.go -package=mocks

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserService регистрирует граждан, присылающих снимки, и выдает им токены
type UserService interface {
	Register(ctx context.Context, input models.RegisterUserInput) (*models.UserAuthResult, error)
	Login(ctx context.Context, email, password string) (*models.UserAuthResult, error)
}

type userService struct {
	users  UserRepository
	tokens TokenIssuer
	logger *logrus.Logger
}

func NewUserService(users UserRepository, tokens TokenIssuer, logger *logrus.Logger) UserService {
	return &userService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register создает пользователя и сразу выдает ему токен.
// Повторная регистрация того же адреса дает ErrEmailTaken.
func (s *userService) Register(ctx context.Context, input models.RegisterUserInput) (*models.UserAuthResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Register",
	})
	log.Info("Attempting to register user")

	if err := validateFullName(input.FullName); err != nil {
		return nil, err
	}
	email := normalizeEmail(input.Email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		FullName:     strings.TrimSpace(input.FullName),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			log.Warn("Attempted to register an existing email")
		} else {
			log.WithError(err).Error("Failed to create user in repository")
		}
		return nil, storageError("could not register user", err)
	}

	result, err := s.issue(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return nil, err
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return result, nil
}

// Login проверяет email и пароль. Неизвестный адрес и неверный пароль неразличимы.
func (s *userService) Login(ctx context.Context, email, password string) (*models.UserAuthResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Login",
	})
	log.Info("User login attempt")

	email = normalizeEmail(email)
	if validateEmail(email) != nil || password == "" {
		return nil, ErrInvalidUserLogin
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			auth.BurnCompare(password)
			log.Warn("Login failed")
			return nil, ErrInvalidUserLogin
		}
		log.WithError(err).Error("Failed to load user by email")
		return nil, storageError("could not authenticate user", err)
	}

	if ok, _ := auth.VerifyPassword(user.PasswordHash, password); !ok {
		log.Warn("Login failed")
		return nil, ErrInvalidUserLogin
	}

	result, err := s.issue(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return nil, err
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return result, nil
}

func (s *userService) issue(user *models.User) (*models.UserAuthResult, error) {
	token, claims, err := s.tokens.Issue(auth.Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   auth.RoleUser,
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}
	return &models.UserAuthResult{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: user}, nil
}
