// Package upload recebe os arquivos de proposta enviados pelo front.
package upload

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"propostasrest/internal/config"
	"propostasrest/internal/models/dto"
	"propostasrest/internal/utils"

	"github.com/gin-gonic/gin"
)

// Upload recebe um arquivo e devolve a URL pública
// @Summary      Enviar arquivo
// @Description  Grava o arquivo no diretório de uploads com nome prefixado pelo timestamp e devolve a URL para vincular à proposta.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Arquivo da proposta"
// @Success      201 {object} map[string]string
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /upload [post]
func Upload(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Arquivo não enviado", nil))
			return
		}

		dir := utils.GetUploadDir()
		if err := os.MkdirAll(dir, 0o755); err != nil {
			cfg.Logger.Error("failed to create upload dir", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao salvar arquivo", nil))
			return
		}

		// timestamp no prefixo evita colisão entre arquivos homônimos
		nome := fmt.Sprintf("%d-%s", time.Now().UnixMilli(),
			strings.ReplaceAll(file.Filename, " ", "-"))

		if err := c.SaveUploadedFile(file, filepath.Join(dir, nome)); err != nil {
			cfg.Logger.Error("failed to save uploaded file", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao salvar arquivo", nil))
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"url": "/uploads/" + nome,
		})
	}
}
