package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/OSUMed/feature-request-app/internal/handlers/dto"
	"github.com/OSUMed/feature-request-app/internal/handlers/middleware"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/auth"
	"github.com/OSUMed/feature-request-app/internal/services"
)

// AuthHandler lida com login por credenciais e sessão do usuário
type AuthHandler struct {
	userService *services.UserService
	jwtService  *auth.JWTService
	tokenStore  *auth.TokenStore
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(userService *services.UserService, jwtService *auth.JWTService, tokenStore *auth.TokenStore) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
	}
}

// Login troca email e senha por um access token.
// @Summary Login with credentials
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ProblemResponse
// @Failure 401 {object} dto.ProblemResponse
// @Failure 500 {object} dto.ProblemResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	issued, err := h.jwtService.Issue(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: issued.Token,
		TokenType:   "Bearer",
		ExpiresAt:   issued.ExpiresAt,
		User:        dto.ToUserResponse(user),
	})
}

// Logout revoga o token atual até a expiração.
// @Summary Logout
// @Tags Auth
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} dto.ProblemResponse
// @Failure 500 {object} dto.ProblemResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		dto.WriteProblem(c, dto.UnauthenticatedProblemI18n(c))
		return
	}

	expiresAt := time.Now()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := h.tokenStore.Revoke(c.Request.Context(), claims.ID, expiresAt); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Me retorna o perfil do usuário autenticado.
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ProblemResponse
// @Failure 404 {object} dto.ProblemResponse
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		dto.WriteProblem(c, dto.UnauthenticatedProblemI18n(c))
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
