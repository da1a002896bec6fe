package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/beautygo/beautygo-api/pkg/auth"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

func newAuthService() (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(users, jwtManager, zap.NewNop()), users
}

func registerReq(role string) RegisterRequest {
	return RegisterRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Phone:    "555-0101",
		Password: "correct-horse",
		Role:     role,
		City:     "Austin",
		State:    "TX",
	}
}

func TestRegister_Client(t *testing.T) {
	svc, _ := newAuthService()

	result, err := svc.Register(context.Background(), registerReq("client"))
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "client", result.User.Role)
	assert.True(t, result.User.Approved)
}

func TestRegister_ProfessionalUnapproved(t *testing.T) {
	svc, _ := newAuthService()

	result, err := svc.Register(context.Background(), registerReq("professional"))
	require.NoError(t, err)

	assert.False(t, result.User.Approved)
}

func TestRegister_AdminRejected(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), registerReq("admin"))
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("client"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("professional"))
	assert.True(t, domain.IsKind(err, domain.KindConflict))
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("client"))
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.Login(ctx, LoginRequest{Email: "dana@example.com", Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{Email: "dana@example.com", Password: "battery-staple"})
		assert.True(t, domain.IsKind(err, domain.KindUnauthorized))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
		assert.True(t, domain.IsKind(err, domain.KindUnauthorized))
	})
}
