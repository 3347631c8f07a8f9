package auth_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	errUsuarioNaoEncontrado = errors.New("registro não encontrado")
	errBancoIndisponivel    = errors.New("banco indisponível")
)

// Implementações reais para teste
type testUserStore struct {
	hashes map[string]string
	falha  error
}

func (s *testUserStore) buscarHash(email string) (string, error) {
	if s.falha != nil {
		return "", s.falha
	}
	hash, ok := s.hashes[email]
	if !ok {
		return "", errUsuarioNaoEncontrado
	}
	return hash, nil
}

type testLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type testLoginResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// loginForTest é a rota de login adaptada para o double: e-mail
// desconhecido e senha errada respondem a mesma mensagem; falha do
// banco é separada e vira 500
func loginForTest(store *testUserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req testLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, testLoginResponse{
				Error: "Bad Request", Message: "Email e senha são obrigatórios",
			})
			return
		}

		hash, err := store.buscarHash(req.Email)
		if errors.Is(err, errUsuarioNaoEncontrado) {
			c.JSON(http.StatusUnauthorized, testLoginResponse{
				Error: "Unauthorized", Message: "Credenciais inválidas",
			})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, testLoginResponse{
				Error: "Internal Server Error", Message: "Erro ao autenticar",
			})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, testLoginResponse{
				Error: "Unauthorized", Message: "Credenciais inválidas",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Login realizado com sucesso"})
	}
}

func TestLogin_Branches(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name            string
		falha           error
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "credenciais corretas",
			body:            `{"email":"ana@example.com","password":"segredo123"}`,
			expectedStatus:  http.StatusOK,
			expectedMessage: "Login realizado com sucesso",
		},
		{
			name:            "e-mail desconhecido",
			body:            `{"email":"naoexiste@example.com","password":"segredo123"}`,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Credenciais inválidas",
		},
		{
			name:            "senha errada usa a mesma mensagem",
			body:            `{"email":"ana@example.com","password":"errada"}`,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Credenciais inválidas",
		},
		{
			// falha do banco não pode se disfarçar de credencial ruim
			name:            "erro do banco responde 500",
			falha:           errBancoIndisponivel,
			body:            `{"email":"ana@example.com","password":"segredo123"}`,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Erro ao autenticar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &testUserStore{
				hashes: map[string]string{"ana@example.com": string(hash)},
				falha:  tt.falha,
			}

			router := gin.New()
			router.POST("/auth/login", loginForTest(store))

			req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp testLoginResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}
