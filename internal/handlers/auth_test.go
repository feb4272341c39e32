package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetops/fleet-backoffice/internal/auth"
	"github.com/fleetops/fleet-backoffice/internal/db"
	"github.com/fleetops/fleet-backoffice/internal/models"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Insert(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) Replace(ctx context.Context, id string, user *models.User) error {
	return m.Called(ctx, id, user).Error(0)
}

func (m *mockUserStore) UpdateLastLogin(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func authTestRouter(users db.UserStore, service *auth.Service) *gin.Engine {
	h := NewAuthHandler(users, service)
	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/register", h.Register)
	return r
}

func TestLoginSuccess(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)
	hash, err := service.HashPassword("correct horse battery")
	require.NoError(t, err)

	user := &models.User{
		ID:           primitive.NewObjectID(),
		Username:     "dispatcher",
		PasswordHash: hash,
		Role:         models.RoleOperator,
		IsActive:     true,
	}

	users := new(mockUserStore)
	users.On("GetByUsername", mock.Anything, "dispatcher").Return(user, nil)
	users.On("UpdateLastLogin", mock.Anything, user.ID.Hex()).Return(nil)

	router := authTestRouter(users, service)
	w := performRequest(t, router, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "dispatcher",
		"password": "correct horse battery",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	assert.NotEmpty(t, body["refresh_token"])

	claims, err := service.ValidateToken(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "dispatcher", claims.Username)
	assert.Equal(t, models.RoleOperator, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)
	hash, err := service.HashPassword("the real password")
	require.NoError(t, err)

	users := new(mockUserStore)
	users.On("GetByUsername", mock.Anything, "dispatcher").Return(&models.User{
		ID:           primitive.NewObjectID(),
		Username:     "dispatcher",
		PasswordHash: hash,
		IsActive:     true,
	}, nil)

	router := authTestRouter(users, service)
	w := performRequest(t, router, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "dispatcher",
		"password": "a guess",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["message"])
}

func TestLoginUnknownUserSameMessage(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)
	users := new(mockUserStore)
	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, db.ErrNotFound)

	router := authTestRouter(users, service)
	w := performRequest(t, router, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "ghost",
		"password": "whatever",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["message"])
}

func TestLoginDisabledAccount(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)
	users := new(mockUserStore)
	users.On("GetByUsername", mock.Anything, "former").Return(&models.User{
		ID:       primitive.NewObjectID(),
		Username: "former",
		IsActive: false,
	}, nil)

	router := authTestRouter(users, service)
	w := performRequest(t, router, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "former",
		"password": "whatever",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)
	users := new(mockUserStore)
	users.On("Insert", mock.Anything, mock.Anything).Return(db.ErrDuplicate)

	router := authTestRouter(users, service)
	w := performRequest(t, router, http.MethodPost, "/api/auth/register", map[string]any{
		"username": "dispatcher",
		"email":    "dispatcher@example.com",
		"password": "long enough password",
		"role":     "operator",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User with this username or email already exists", decodeBody(t, w)["message"])
}

func TestRegisterValidation(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)
	users := new(mockUserStore)

	router := authTestRouter(users, service)
	w := performRequest(t, router, http.MethodPost, "/api/auth/register", map[string]any{
		"username": "ab", // too short
		"email":    "not-an-email",
		"password": "short",
		"role":     "wizard",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestRegisterHashesPassword(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)
	users := new(mockUserStore)
	users.On("Insert", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.PasswordHash != "" && u.PasswordHash != "long enough password" &&
			service.CheckPassword("long enough password", u.PasswordHash)
	})).Return(nil)

	router := authTestRouter(users, service)
	w := performRequest(t, router, http.MethodPost, "/api/auth/register", map[string]any{
		"username":   "dispatcher",
		"email":      "dispatcher@example.com",
		"password":   "long enough password",
		"first_name": "Dana",
		"last_name":  "Reyes",
		"role":       "operator",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	users.AssertExpectations(t)
}
