package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"propostasrest/internal/models/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionDuration é a validade do token emitido no login
const SessionDuration = 13 * time.Hour

// GenerateJWT gera o token de sessão do usuário autenticado
func GenerateJWT(userID uint, email string, admin bool) (string, error) {
	jwtKey := os.Getenv("JWT_SECRET")
	if jwtKey == "" {
		return "", errors.New("JWT_SECRET não configurado")
	}
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"admin":   admin,
		"exp":     time.Now().Add(SessionDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtKey))
}

// VerifyToken valida a assinatura e a expiração de um token
func VerifyToken(token string) (*jwt.Token, error) {
	tokenVerify, err := jwt.Parse(token, func(newToken *jwt.Token) (any, error) {
		if _, isValid := newToken.Method.(*jwt.SigningMethodHMAC); !isValid {
			return nil, fmt.Errorf("unexpected signing method: %v", newToken.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	return tokenVerify, nil
}

// DecodeTokenJWT extrai os claims de um token válido
func DecodeTokenJWT(token string) (jwt.MapClaims, error) {

	tokenVerify, err := VerifyToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	claims, isOk := tokenVerify.Claims.(jwt.MapClaims)
	if isOk && tokenVerify.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// Auth exige um token Bearer válido e coloca a identidade do usuário
// no contexto da requisição
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(c, http.StatusUnauthorized, "Unauthorized", "Token não informado", nil))
			return
		}

		parts := strings.Split(token, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(c, http.StatusUnauthorized, "Unauthorized", "Formato do header Authorization inválido", nil))
			return
		}

		claims, err := DecodeTokenJWT(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(c, http.StatusUnauthorized, "Unauthorized", "Token inválido", nil))
			return
		}

		c.Set("currentUser", claims)
		if id, ok := claims["user_id"].(float64); ok {
			c.Set("user_id", uint(id))
		}
		if email, ok := claims["email"].(string); ok {
			c.Set("user_email", email)
		}
		if admin, ok := claims["admin"].(bool); ok {
			c.Set("is_admin", admin)
		}
		c.Next()
	}
}

// AdminOnly bloqueia usuários sem privilégio de administrador. Deve
// vir depois de Auth na cadeia.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(c, http.StatusForbidden, "Forbidden", "Não autorizado", nil))
			return
		}
		c.Next()
	}
}

// CurrentUserID retorna o id do usuário autenticado na requisição
func CurrentUserID(c *gin.Context) uint {
	if id, exists := c.Get("user_id"); exists {
		if v, ok := id.(uint); ok {
			return v
		}
	}
	return 0
}
