package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// setupIds -
func setupIds(engine *gin.Engine) {
	engine.Use(RequestIDMiddleware("X-Request-ID"))
}

// GetRequestID retorna o id da requisição guardado no contexto
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// RequestIDMiddleware propaga ou gera um id único por requisição
func RequestIDMiddleware(headerName string) gin.HandlerFunc {
	if headerName == "" {
		headerName = "X-Request-ID"
	}

	return func(c *gin.Context) {
		requestID := c.GetHeader(headerName)
		if requestID == "" {
			requestID = uuid.New().String()
			c.Header(headerName, requestID)
		}
		c.Set("request_id", requestID)
		c.Next()
	}
}
