package middleware

import (
	"time"

	"propostasrest/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// setupLogger -
func setupLogger(engine *gin.Engine, log *logger.Logger) {
	engine.Use(LoggerMiddleware(log, "/healthcheck/"))
}

// LoggerMiddleware registra cada requisição HTTP com método, rota,
// status e duração. Caminhos em skipPaths não são logados.
func LoggerMiddleware(log *logger.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = true
	}

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		statusCode := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", statusCode),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", GetRequestID(c)),
		}

		switch {
		case statusCode >= 500:
			log.Error("http server error", nil, fields...)
		case statusCode >= 400:
			log.Warn("http client error", fields...)
		default:
			log.Info("http request", fields...)
		}
	}
}
