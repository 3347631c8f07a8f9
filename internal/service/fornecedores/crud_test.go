package fornecedores_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Implementações reais para teste
type testStore struct {
	existentes []string
	criados    []string
	falha      error
}

type testCreateRequest struct {
	Nome string `json:"nome"`
}

type testErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var errStoreIndisponivel = errors.New("store indisponível")

// nomeJaExiste reproduz a comparação sem distinção de maiúsculas usada
// na rota de criação; falha simula um erro do banco na checagem
func (s *testStore) nomeJaExiste(nome string) (bool, error) {
	if s.falha != nil {
		return false, s.falha
	}
	for _, existente := range s.existentes {
		if strings.EqualFold(existente, nome) {
			return true, nil
		}
	}
	return false, nil
}

func (s *testStore) criar(nome string) {
	s.criados = append(s.criados, nome)
}

// createFornecedorForTest é a rota de criação adaptada para o double
func createFornecedorForTest(store *testStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req testCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, testErrorResponse{
				Error: "Bad Request", Code: http.StatusBadRequest,
				Message: "Corpo da requisição inválido",
			})
			return
		}

		nome := strings.TrimSpace(req.Nome)
		if nome == "" {
			c.JSON(http.StatusBadRequest, testErrorResponse{
				Error: "Bad Request", Code: http.StatusBadRequest,
				Message: "Nome é obrigatório",
			})
			return
		}

		duplicado, err := store.nomeJaExiste(nome)
		if err != nil {
			c.JSON(http.StatusInternalServerError, testErrorResponse{
				Error: "Internal Server Error", Code: http.StatusInternalServerError,
				Message: "Erro ao criar fornecedor",
			})
			return
		}
		if duplicado {
			c.JSON(http.StatusBadRequest, testErrorResponse{
				Error: "Bad Request", Code: http.StatusBadRequest,
				Message: "Já existe um fornecedor com esse nome",
			})
			return
		}

		store.criar(nome)
		c.JSON(http.StatusCreated, gin.H{"nome": nome})
	}
}

func TestCreateFornecedor_NomeDuplicado(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		existentes      []string
		falha           error
		body            string
		expectedStatus  int
		expectedCriado  string
		expectedMessage string
	}{
		{
			name:           "nome novo é criado",
			existentes:     []string{"Construtora Alfa"},
			body:           `{"nome":"Alimentos Beta"}`,
			expectedStatus: http.StatusCreated,
			expectedCriado: "Alimentos Beta",
		},
		{
			name:            "nome idêntico é rejeitado",
			existentes:      []string{"Construtora Alfa"},
			body:            `{"nome":"Construtora Alfa"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Já existe um fornecedor com esse nome",
		},
		{
			name:            "duplicidade ignora maiúsculas",
			existentes:      []string{"Construtora Alfa"},
			body:            `{"nome":"CONSTRUTORA ALFA"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Já existe um fornecedor com esse nome",
		},
		{
			name:            "espaços nas pontas são aparados antes da checagem",
			existentes:      []string{"Construtora Alfa"},
			body:            `{"nome":"  construtora alfa  "}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Já existe um fornecedor com esse nome",
		},
		{
			name:           "nome vazio é rejeitado",
			existentes:     nil,
			body:           `{"nome":"   "}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			// falha na checagem de duplicidade não pode deixar o
			// insert prosseguir
			name:            "erro na checagem aborta a criação",
			existentes:      []string{"Construtora Alfa"},
			falha:           errStoreIndisponivel,
			body:            `{"nome":"Alimentos Beta"}`,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Erro ao criar fornecedor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &testStore{existentes: tt.existentes, falha: tt.falha}

			router := gin.New()
			router.POST("/fornecedores", createFornecedorForTest(store))

			req := httptest.NewRequest("POST", "/fornecedores", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCriado != "" {
				assert.Equal(t, []string{tt.expectedCriado}, store.criados)
			} else {
				assert.Empty(t, store.criados)
			}

			if tt.expectedMessage != "" {
				var resp testErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}
