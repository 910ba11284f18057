package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/agency_dispatch_system/internal/apperror"
	"github.com/shenikar/agency_dispatch_system/internal/auth"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/shenikar/agency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type userMocks struct {
	users  *mocks.MockUserRepository
	tokens *mocks.MockTokenIssuer
}

func newTestUserService(t *testing.T) (UserService, userMocks) {
	ctrl := gomock.NewController(t)
	m := userMocks{
		users:  mocks.NewMockUserRepository(ctrl),
		tokens: mocks.NewMockTokenIssuer(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewUserService(m.users, m.tokens, logger), m
}

// issueUserToken подставляет срок действия, как это делает настоящий TokenManager
func issueUserToken(t *testing.T, wantEmail string) func(auth.Claims) (string, *auth.Claims, error) {
	return func(c auth.Claims) (string, *auth.Claims, error) {
		assert.Equal(t, auth.RoleUser, c.Role)
		assert.Equal(t, wantEmail, c.Email)
		assert.NotEmpty(t, c.UserID)
		assert.Empty(t, c.AgencyID)
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
		return "user-token", &c, nil
	}
}

func TestRegisterUser_Success(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.NotEqual(t, uuid.Nil, u.ID)
			assert.Equal(t, "Asha Rao", u.FullName)
			assert.Equal(t, "asha@example.org", u.Email)
			ok, _ := auth.VerifyPassword(u.PasswordHash, "secret1")
			assert.True(t, ok)
			return nil
		}).
		Times(1)
	m.tokens.EXPECT().Issue(gomock.Any()).DoAndReturn(issueUserToken(t, "asha@example.org")).Times(1)

	res, err := service.Register(ctx, models.RegisterUserInput{
		FullName: " Asha Rao ",
		Email:    " Asha@Example.org",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-token", res.Token)
	assert.Equal(t, "asha@example.org", res.User.Email)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().Create(ctx, gomock.Any()).Return(ErrEmailTaken).Times(1)
	m.tokens.EXPECT().Issue(gomock.Any()).Times(0)

	_, err := service.Register(ctx, models.RegisterUserInput{FullName: "Asha Rao", Email: "asha@example.org", Password: "secret1"})

	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestRegisterUser_StorageFailure(t *testing.T) {
	service, m := newTestUserService(t)

	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset")).Times(1)

	_, err := service.Register(context.Background(), models.RegisterUserInput{FullName: "Asha Rao", Email: "asha@example.org", Password: "secret1"})

	require.Error(t, err)
	assert.Equal(t, apperror.KindPersistence, apperror.KindOf(err))
}

func TestRegisterUser_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input models.RegisterUserInput
	}{
		{"short name", models.RegisterUserInput{FullName: "Al", Email: "al@example.org", Password: "secret1"}},
		{"bad email", models.RegisterUserInput{FullName: "Asha Rao", Email: "not-an-email", Password: "secret1"}},
		{"short password", models.RegisterUserInput{FullName: "Asha Rao", Email: "asha@example.org", Password: "123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestUserService(t)
			m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			_, err := service.Register(context.Background(), tt.input)

			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}

func TestUserLogin(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()

	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	user := &models.User{ID: uuid.New(), FullName: "Asha Rao", Email: "asha@example.org", PasswordHash: hash}

	m.users.EXPECT().GetByEmail(ctx, "asha@example.org").Return(user, nil).Times(2)
	m.users.EXPECT().GetByEmail(ctx, "nobody@example.org").Return(nil, ErrUserNotFound).Times(1)
	m.tokens.EXPECT().Issue(gomock.Any()).DoAndReturn(issueUserToken(t, "asha@example.org")).Times(1)

	res, err := service.Login(ctx, "ASHA@example.org", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "user-token", res.Token)
	assert.Equal(t, user, res.User)

	_, err = service.Login(ctx, "asha@example.org", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidUserLogin)

	_, err = service.Login(ctx, "nobody@example.org", "secret1")
	assert.ErrorIs(t, err, ErrInvalidUserLogin)

	_, err = service.Login(ctx, "not-an-email", "secret1")
	assert.ErrorIs(t, err, ErrInvalidUserLogin)
}
