package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
	"github.com/OSUMed/feature-request-app/internal/domain/ports"
	"github.com/OSUMed/feature-request-app/internal/handlers/dto"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/auth"
)

const (
	// IdentityContextKey guarda o *entities.Identity da requisição autenticada
	IdentityContextKey = "identity"
	// ClaimsContextKey guarda as *auth.Claims do token aceito
	ClaimsContextKey = "token_claims"
)

// AuthMiddleware resolve a identidade a partir do header Authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	tokenStore *auth.TokenStore
	logger     ports.Logger
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(jwtService *auth.JWTService, tokenStore *auth.TokenStore, logger ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
		logger:     logger,
	}
}

// Authenticate aceita "Authorization: Bearer <jwt>". Token ausente, inválido ou
// revogado segue como requisição anônima; cada service decide se isso é permitido.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Parse(token)
		if err != nil {
			m.logger.Debug("ignoring invalid access token", "error", err)
			c.Next()
			return
		}

		if m.tokenStore.IsRevoked(c.Request.Context(), claims.ID) {
			m.logger.Debug("ignoring revoked access token", "token_id", claims.ID)
			c.Next()
			return
		}

		c.Set(IdentityContextKey, claims.Identity())
		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// RequireAuth recusa com 401 requisições sem identidade
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFrom(c) == nil {
			dto.WriteProblem(c, dto.UnauthenticatedProblemI18n(c))
			return
		}
		c.Next()
	}
}

// IdentityFrom retorna a identidade da requisição ou nil para anônimos
func IdentityFrom(c *gin.Context) *entities.Identity {
	value, exists := c.Get(IdentityContextKey)
	if !exists {
		return nil
	}
	identity, _ := value.(*entities.Identity)
	return identity
}

// ClaimsFrom retorna as claims do token aceito ou nil
func ClaimsFrom(c *gin.Context) *auth.Claims {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
