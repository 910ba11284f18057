package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleAgency      = "agency"
	RoleGroundStaff = "ground_staff"
	RoleUser        = "user"

	claimsVersion = 1
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims - полезная нагрузка токена. Для сотрудника AgencyID - его агентство.
// Токен пользователя несет только UserID и Email.
type Claims struct {
	AgencyID      string `json:"AgencyId,omitempty"`
	GroundStaffID string `json:"groundStaffId,omitempty"`
	UserID        string `json:"userId,omitempty"`
	Email         string `json:"email,omitempty"`
	MobileNumber  string `json:"mobileNumber,omitempty"`
	Role          string `json:"role"`
	Version       int    `json:"v"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет подписанные HS256 токены
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue подписывает токен; jti, iat и exp заполняются здесь
func (m *TokenManager) Issue(claims Claims) (string, *Claims, error) {
	now := m.now()
	claims.Version = claimsVersion
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, &claims, nil
}

// Parse проверяет подпись и срок действия
func (m *TokenManager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
