package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OSUMed/feature-request-app/internal/handlers/dto"
	"github.com/OSUMed/feature-request-app/internal/handlers/middleware"
	"github.com/OSUMed/feature-request-app/internal/services"
)

// UpvoteHandler lida com os votos do usuário atual
type UpvoteHandler struct {
	upvoteService *services.UpvoteService
}

// NewUpvoteHandler cria um novo UpvoteHandler
func NewUpvoteHandler(upvoteService *services.UpvoteService) *UpvoteHandler {
	return &UpvoteHandler{upvoteService: upvoteService}
}

// Status informa se o usuário atual votou; anônimos recebem false.
// @Summary Get upvote state
// @Tags Upvotes
// @Produce json
// @Param id path string true "Feature request ID"
// @Success 200 {object} dto.UpvoteResponse
// @Failure 500 {object} dto.ProblemResponse
// @Router /api/v1/features/{id}/upvote [get]
func (h *UpvoteHandler) Status(c *gin.Context) {
	upvoted, err := h.upvoteService.Status(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpvoteResponse{Upvoted: upvoted})
}

// Toggle adiciona ou remove o voto do usuário atual.
// @Summary Toggle upvote
// @Tags Upvotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Feature request ID"
// @Success 200 {object} dto.UpvoteResponse
// @Failure 401 {object} dto.ProblemResponse
// @Failure 404 {object} dto.ProblemResponse
// @Failure 500 {object} dto.ProblemResponse
// @Router /api/v1/features/{id}/upvote [post]
func (h *UpvoteHandler) Toggle(c *gin.Context) {
	upvoted, err := h.upvoteService.Toggle(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpvoteResponse{Upvoted: upvoted})
}
