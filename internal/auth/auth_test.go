package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetops/fleet-backoffice/internal/models"
)

func newTestService() *Service {
	return NewService("test-secret", 24*time.Hour)
}

func TestNewService(t *testing.T) {
	service := newTestService()
	assert.NotNil(t, service)
	assert.NotEmpty(t, service.jwtSecret)
	assert.Equal(t, 24*time.Hour, service.tokenExp)

	// A non-positive lifetime falls back to the default.
	service = NewService("test-secret", 0)
	assert.Equal(t, 24*time.Hour, service.tokenExp)
}

func TestService_HashPassword(t *testing.T) {
	service := newTestService()

	password := "testpassword123"
	hash, err := service.HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
}

func TestService_CheckPassword(t *testing.T) {
	service := newTestService()

	password := "testpassword123"
	hash, _ := service.HashPassword(password)

	assert.True(t, service.CheckPassword(password, hash))
	assert.False(t, service.CheckPassword("wrongpassword", hash))
}

func TestService_GenerateToken(t *testing.T) {
	service := newTestService()

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Username: "testuser",
		Role:     models.RoleAdmin,
	}

	token, err := service.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService()

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Username: "testuser",
		Role:     models.RoleAdmin,
	}

	token, _ := service.GenerateToken(user)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Role, claims.Role)

	_, err = service.ValidateToken("invalid-token")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)

	// Bearer prefix is tolerated.
	_, err = service.ValidateToken("Bearer " + token)
	assert.NoError(t, err)

	// A token signed with a different secret is rejected.
	other := NewService("other-secret", 24*time.Hour)
	otherToken, _ := other.GenerateToken(user)
	_, err = service.ValidateToken(otherToken)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_ExtractTokenFromHeader(t *testing.T) {
	service := newTestService()

	token := "valid-token"
	extracted, err := service.ExtractTokenFromHeader("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, token, extracted)

	_, err = service.ExtractTokenFromHeader("")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)

	_, err = service.ExtractTokenFromHeader("InvalidFormat")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)

	_, err = service.ExtractTokenFromHeader("Bearer ")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_GenerateRefreshToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateRefreshToken()
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Len(t, token, 44) // base64 encoded 32 bytes
}

func TestService_TokenExpiration(t *testing.T) {
	service := newTestService()

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Username: "testuser",
		Role:     models.RoleAdmin,
	}

	token, _ := service.GenerateToken(user)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)

	now := time.Now().Unix()
	assert.Greater(t, claims.Exp, now)
	assert.LessOrEqual(t, claims.Exp, now+int64(service.tokenExp.Seconds())+1)
}
