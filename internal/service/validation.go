package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/agency_dispatch_system/internal/apperror"
)

const (
	minPasswordLength = 6
	minFullNameLength = 3
)

var (
	mobilePattern = regexp.MustCompile(`^\d{10}$`)
	fieldValidate = validator.New()
)

func validateMobile(mobile string) error {
	if !mobilePattern.MatchString(mobile) {
		return apperror.Validation("mobile number must be exactly 10 digits")
	}
	return nil
}

func validateEmail(email string) error {
	if err := fieldValidate.Var(email, "required,email"); err != nil {
		return apperror.Validation("email is not valid")
	}
	return nil
}

func validateFullName(name string) error {
	if len([]rune(strings.TrimSpace(name))) < minFullNameLength {
		return apperror.Validation("fullname must be at least %d characters", minFullNameLength)
	}
	return nil
}

// normalizeEmail приводит адрес к виду, в котором он хранится
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperror.Validation("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

func validateRequired(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.Validation("%s is required", field)
	}
	return nil
}

// normalizeTags убирает пустые значения и дубликаты, сохраняя порядок
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// storageError оставляет доменные ошибки как есть, остальные помечает как сбой хранилища
func storageError(op string, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return fmt.Errorf("service: %s: %w", op, err)
	}
	return apperror.Persistence("service: "+op, err)
}
