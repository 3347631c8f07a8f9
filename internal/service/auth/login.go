// Package auth implementa o login por e-mail e senha.
package auth

import (
	"errors"
	"net/http"
	"time"

	"propostasrest/internal/config"
	"propostasrest/internal/middleware"
	"propostasrest/internal/models/dto"
	"propostasrest/internal/repositories/postgres"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login autentica um usuário e retorna um token JWT
// @Summary      Login
// @Description  Autentica por e-mail e senha e emite um token Bearer com validade de 13 horas.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Credenciais de login"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - Credenciais inválidas"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /auth/login [post]
func Login(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Email e senha são obrigatórios", err.Error()))
			return
		}

		// Mesma mensagem para e-mail desconhecido e senha errada;
		// falha do banco é outra coisa e responde 500
		user, err := cfg.DB.GetUserByEmail(c.Request.Context(), req.Email)
		if errors.Is(err, postgres.ErrRegistroNaoEncontrado) {
			c.JSON(http.StatusUnauthorized,
				dto.NewErrorResponse(c, http.StatusUnauthorized,
					"Unauthorized", "Credenciais inválidas", nil))
			return
		}
		if err != nil {
			cfg.Logger.Error("failed to load user for login", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao autenticar", nil))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized,
				dto.NewErrorResponse(c, http.StatusUnauthorized,
					"Unauthorized", "Credenciais inválidas", nil))
			return
		}

		token, err := middleware.GenerateJWT(user.Id, user.Email, user.IsAdmin)
		if err != nil {
			cfg.Logger.Error("failed to generate session token", err,
				zap.Uint("user_id", user.Id))
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao autenticar", nil))
			return
		}

		response := dto.LoginResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresAt: time.Now().Add(middleware.SessionDuration),
			User: dto.UserResponse{
				Id:        user.Id,
				Name:      user.Name,
				Email:     user.Email,
				IsAdmin:   user.IsAdmin,
				CreatedAt: user.CreatedAt,
			},
		}

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, response, "Login realizado com sucesso"))
	}
}
