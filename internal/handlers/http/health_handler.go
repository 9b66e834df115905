package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler expõe o estado da aplicação e do banco
type HealthHandler struct {
	env  string
	ping func(ctx context.Context) error
}

// NewHealthHandler cria um novo HealthHandler; ping testa o banco
func NewHealthHandler(env string, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{env: env, ping: ping}
}

// Check responde 200 com o banco acessível e 503 caso contrário.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, database, code := "ok", "ok", http.StatusOK
	if err := h.ping(ctx); err != nil {
		_ = c.Error(err)
		status, database, code = "degraded", "unavailable", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":   status,
		"env":      h.env,
		"database": database,
	})
}
