package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/OSUMed/feature-request-app/internal/domain/ports"
	"github.com/OSUMed/feature-request-app/internal/handlers/dto"
)

// RequestLogger registra uma linha de access log por requisição
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if identity := IdentityFrom(c); identity != nil {
			fields = append(fields, "user_id", identity.UserID)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			logger.Error("request completed", fields...)
		case status >= 400:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}

// BaseURL guarda a URL base da API no contexto para os tipos RFC 7807
func BaseURL(url string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, url)
		c.Next()
	}
}
