// Файл: internal/services/auth_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"
)

func newAuthTestEnv() (AuthServiceInterface, *fakeUserRepo) {
	logger := zap.NewNop()
	userRepo := newFakeUserRepo()
	jwtSvc := service.NewJWTService("test-secret", time.Hour, logger)
	return NewAuthService(userRepo, jwtSvc, logger), userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthTestEnv()
	ctx := ctxWithUser("")

	registered, err := svc.Register(ctx, dto.RegisterDTO{
		Email:    "tech@plant.tj",
		Password: "secret123",
		Name:     "Техник",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "technician", registered.User.Role, "роль по умолчанию")
	assert.NotEqual(t, "secret123", registered.User.Password, "пароль хранится только хешем")

	loggedIn, err := svc.Login(ctx, dto.LoginDTO{Email: "tech@plant.tj", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthTestEnv()
	ctx := ctxWithUser("")

	_, err := svc.Register(ctx, dto.RegisterDTO{Email: "tech@plant.tj", Password: "secret123", Name: "Техник"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterDTO{Email: "tech@plant.tj", Password: "another", Name: "Дубль"})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthTestEnv()
	ctx := ctxWithUser("")

	_, err := svc.Login(ctx, dto.LoginDTO{Email: "nobody@plant.tj", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "несуществующий email неотличим от неверного пароля")

	_, err = svc.Register(ctx, dto.RegisterDTO{Email: "tech@plant.tj", Password: "secret123", Name: "Техник"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginDTO{Email: "tech@plant.tj", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestMeRequiresContextUser(t *testing.T) {
	svc, userRepo := newAuthTestEnv()

	registered, err := svc.Register(ctxWithUser(""), dto.RegisterDTO{Email: "tech@plant.tj", Password: "secret123", Name: "Техник"})
	require.NoError(t, err)

	me, err := svc.Me(ctxWithUser(registered.User.ID))
	require.NoError(t, err)
	assert.Equal(t, registered.User.Email, me.Email)

	_, err = svc.Me(ctxWithUser(""))
	assert.ErrorIs(t, err, apperrors.ErrUserIDNotFoundInContext)

	_, ok := userRepo.users[registered.User.ID]
	assert.True(t, ok)
}
