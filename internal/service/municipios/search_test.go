package municipios_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"propostasrest/internal/config"
	"propostasrest/internal/service/municipios"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// termos curtos respondem lista vazia antes de tocar o banco, por isso
// o config pode ir sem conexão
func TestSearch_TermoCurto(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/municipios", municipios.Search(&config.App{}))

	tests := []struct {
		name string
		url  string
	}{
		{name: "sem termo", url: "/municipios"},
		{name: "um caractere", url: "/municipios?search=a"},
		{name: "dois caracteres", url: "/municipios?search=ab"},
		{name: "espaços não contam", url: "/municipios?search=%20%20ab%20%20"},
		// o parâmetro do contrato é search; qualquer outro é ignorado
		{name: "parâmetro errado é ignorado", url: "/municipios?q=Campinas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, "[]", w.Body.String())
		})
	}
}
