package cadastros_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Implementações reais para teste
type testCategoriaStore struct {
	registros map[uint]string
	emUso     map[uint]bool
}

type testAuditoria struct {
	detalhes []string
}

func (a *testAuditoria) registrar(detalhe string) {
	a.detalhes = append(a.detalhes, detalhe)
}

// deleteCategoriaForTest é a rota de exclusão adaptada para o double:
// categoria em uso responde 400, o nome é capturado antes da exclusão
// e vai para a trilha de auditoria, id desconhecido cai no 500 genérico
func deleteCategoriaForTest(store *testCategoriaStore, auditoria *testAuditoria) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Id inválido"})
			return
		}

		if store.emUso[uint(id)] {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Categoria em uso por produtos"})
			return
		}

		nome, ok := store.registros[uint(id)]
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao excluir categoria"})
			return
		}

		delete(store.registros, uint(id))
		auditoria.registrar("Categoria removida: " + nome)

		c.JSON(http.StatusOK, gin.H{"message": "Categoria removida com sucesso"})
	}
}

func TestDeleteCategoria_AuditoriaComNome(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		url              string
		emUso            map[uint]bool
		expectedStatus   int
		expectedDetalhes []string
		expectedRestante int
	}{
		{
			name:           "exclusão registra o nome, não o id",
			url:            "/categorias/1",
			expectedStatus: http.StatusOK,
			expectedDetalhes: []string{
				"Categoria removida: Construção",
			},
			expectedRestante: 1,
		},
		{
			name:             "categoria em uso responde 400 e nada é removido",
			url:              "/categorias/2",
			emUso:            map[uint]bool{2: true},
			expectedStatus:   http.StatusBadRequest,
			expectedRestante: 2,
		},
		{
			name:             "id desconhecido cai no 500 genérico sem auditoria",
			url:              "/categorias/99",
			expectedStatus:   http.StatusInternalServerError,
			expectedRestante: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &testCategoriaStore{
				registros: map[uint]string{1: "Construção", 2: "Alimentos"},
				emUso:     tt.emUso,
			}
			auditoria := &testAuditoria{}

			router := gin.New()
			router.DELETE("/categorias/:id", deleteCategoriaForTest(store, auditoria))

			req := httptest.NewRequest("DELETE", tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedDetalhes, auditoria.detalhes)
			assert.Len(t, store.registros, tt.expectedRestante)
		})
	}
}
