// Package users gerencia as contas que acessam o sistema.
package users

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"propostasrest/internal/config"
	"propostasrest/internal/middleware"
	"propostasrest/internal/models/dto"
	"propostasrest/internal/models/entities"
	"propostasrest/internal/repositories/postgres"
	"propostasrest/internal/service/audit"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ListUsers lista os usuários cadastrados
// @Summary      Listar usuários
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.UserResponse
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /users [get]
func ListUsers(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := cfg.DB.ListUsers(c.Request.Context())
		if err != nil {
			cfg.Logger.Error("failed to list users", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao buscar usuários", nil))
			return
		}

		response := make([]dto.UserResponse, 0, len(users))
		for _, user := range users {
			response = append(response, dto.UserResponse{
				Id:        user.Id,
				Name:      user.Name,
				Email:     user.Email,
				IsAdmin:   user.IsAdmin,
				CreatedAt: user.CreatedAt,
			})
		}

		c.JSON(http.StatusOK, response)
	}
}

// CreateUser cadastra um novo usuário
// @Summary      Criar usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user body dto.CreateUserRequest true "Dados do usuário"
// @Success      201 {object} dto.SuccessResponse{data=dto.UserResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad Request - e-mail já cadastrado"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /users [post]
func CreateUser(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Nome, email e senha são obrigatórios", err.Error()))
			return
		}

		ctx := c.Request.Context()

		if _, err := cfg.DB.GetUserByEmail(ctx, req.Email); err == nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "E-mail já cadastrado", nil))
			return
		} else if !errors.Is(err, postgres.ErrRegistroNaoEncontrado) {
			cfg.Logger.Error("failed to check user email", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao criar usuário", nil))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			cfg.Logger.Error("failed to hash password", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao criar usuário", nil))
			return
		}

		user := &entities.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hash),
			IsAdmin:      req.IsAdmin,
			CreatedAt:    time.Now(),
		}

		if err := cfg.DB.CreateUser(ctx, user); err != nil {
			cfg.Logger.Error("failed to create user", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao criar usuário", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionCreate, entities.EntityUser, user.Id,
			fmt.Sprintf("Usuário criado: %s (%s)", user.Name, user.Email))

		c.JSON(http.StatusCreated, dto.NewSuccessResponse(c, dto.UserResponse{
			Id:        user.Id,
			Name:      user.Name,
			Email:     user.Email,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
		}, "Usuário criado com sucesso"))
	}
}

// DeleteUser remove um usuário e seus registros de auditoria
// @Summary      Excluir usuário
// @Description  Remove a conta indicada. Contas de administrador e a própria conta não podem ser removidas. Somente administradores.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id do usuário"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      403 {object} dto.ErrorResponse "Forbidden"
// @Failure      404 {object} dto.ErrorResponse "Not Found"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /users/{id} [delete]
func DeleteUser(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		ctx := c.Request.Context()

		target, err := cfg.DB.GetUserByID(ctx, uint(id))
		if errors.Is(err, postgres.ErrRegistroNaoEncontrado) {
			c.JSON(http.StatusNotFound,
				dto.NewErrorResponse(c, http.StatusNotFound,
					"Not Found", "Usuário não encontrado", nil))
			return
		}
		if err != nil {
			cfg.Logger.Error("failed to get user", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao remover usuário", nil))
			return
		}

		if target.IsAdmin {
			c.JSON(http.StatusForbidden,
				dto.NewErrorResponse(c, http.StatusForbidden,
					"Forbidden", "Não é possível remover a conta do administrador", nil))
			return
		}

		if target.Id == middleware.CurrentUserID(c) {
			c.JSON(http.StatusForbidden,
				dto.NewErrorResponse(c, http.StatusForbidden,
					"Forbidden", "Não é possível remover a própria conta", nil))
			return
		}

		if err := cfg.DB.DeleteUser(ctx, target.Id); err != nil {
			cfg.Logger.Error("failed to delete user", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao remover usuário", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionDelete, entities.EntityUser, target.Id,
			fmt.Sprintf("Usuário removido: %s (%s)", target.Name, target.Email))

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, nil, "Usuário removido com sucesso"))
	}
}
