package produtos_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"propostasrest/internal/config"
	"propostasrest/internal/models/dto"
	"propostasrest/internal/service/produtos"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// a validação roda antes de qualquer acesso ao banco, por isso o
// config pode ir sem conexão
func TestCreateProduto_Validacao(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/produtos", produtos.CreateProduto(&config.App{}))

	tests := []struct {
		name            string
		body            string
		expectedMessage string
	}{
		{
			name:            "nome ausente",
			body:            `{"unidadeId":1}`,
			expectedMessage: "Nome é obrigatório",
		},
		{
			name:            "nenhuma forma de unidade",
			body:            `{"nome":"Cimento CP-II"}`,
			expectedMessage: "Unidade é obrigatória",
		},
		{
			name:            "texto de unidade só com espaços",
			body:            `{"nome":"Cimento CP-II","unidade":"   "}`,
			expectedMessage: "Unidade é obrigatória",
		},
		{
			name:            "conjunto de unidades vazio",
			body:            `{"nome":"Cimento CP-II","unidadeIds":[]}`,
			expectedMessage: "Unidade é obrigatória",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/produtos", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.ErrorResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}
