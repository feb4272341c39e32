package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetops/fleet-backoffice/internal/auth"
	"github.com/fleetops/fleet-backoffice/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(authService *auth.Service, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{RequireAuth(authService)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	r.GET("/protected", chain...)
	return r
}

func issueToken(t *testing.T, service *auth.Service, role models.Role) string {
	t.Helper()
	token, err := service.GenerateToken(&models.User{
		ID:       primitive.NewObjectID(),
		Username: "testuser",
		Role:     role,
	})
	require.NoError(t, err)
	return token
}

func TestRequireAuthMissingHeader(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)
	router := testRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)
	router := testRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)
	router := testRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, service, models.RoleViewer))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "testuser")
}

func TestRequireAuthWrongSecret(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)
	other := auth.NewService("other-secret", time.Hour)
	router := testRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, other, models.RoleViewer))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	service := auth.NewService("test-secret", time.Hour)

	tests := []struct {
		name     string
		role     models.Role
		required models.Role
		want     int
	}{
		{"exact role passes", models.RoleManager, models.RoleManager, http.StatusOK},
		{"admin passes any check", models.RoleAdmin, models.RoleManager, http.StatusOK},
		{"viewer blocked from manager routes", models.RoleViewer, models.RoleManager, http.StatusForbidden},
		{"operator blocked from manager routes", models.RoleOperator, models.RoleManager, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := testRouter(service, RequireRole(tt.required))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+issueToken(t, service, tt.role))
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
