package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"propostasrest/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.Auth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": middleware.CurrentUserID(c),
			"email":   c.GetString("user_email"),
			"admin":   c.GetBool("is_admin"),
		})
	})
	router.GET("/admin", middleware.Auth(), middleware.AdminOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestGenerateJWT_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := middleware.GenerateJWT(42, "ana@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := middleware.DecodeTokenJWT(token)
	require.NoError(t, err)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "ana@example.com", claims["email"])
	assert.Equal(t, true, claims["admin"])
}

func TestGenerateJWT_SemSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := middleware.GenerateJWT(1, "x@example.com", false)
	assert.Error(t, err)
}

func TestAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	router := setupAuthRouter()

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{
			name:           "sem token",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "formato inválido",
			header:         "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token inválido",
			header:         "Bearer nao-e-um-jwt",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	t.Run("token válido popula o contexto", func(t *testing.T) {
		token, err := middleware.GenerateJWT(7, "user@example.com", false)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
		assert.Contains(t, w.Body.String(), `"email":"user@example.com"`)
	})

	t.Run("token assinado com outro segredo é rejeitado", func(t *testing.T) {
		token, err := middleware.GenerateJWT(7, "user@example.com", false)
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "outro-segredo")

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	router := setupAuthRouter()

	t.Run("usuário comum recebe 403", func(t *testing.T) {
		token, err := middleware.GenerateJWT(7, "user@example.com", false)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("administrador passa", func(t *testing.T) {
		token, err := middleware.GenerateJWT(1, "admin@example.com", true)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
