package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
	"github.com/OSUMed/feature-request-app/internal/handlers/dto"
	"github.com/OSUMed/feature-request-app/internal/handlers/middleware"
	"github.com/OSUMed/feature-request-app/internal/services"
)

// FeatureRequestHandler lida com requisições HTTP de feature requests
type FeatureRequestHandler struct {
	featureService    *services.FeatureRequestService
	transitionService *services.StatusTransitionService
}

// NewFeatureRequestHandler cria um novo FeatureRequestHandler
func NewFeatureRequestHandler(
	featureService *services.FeatureRequestService,
	transitionService *services.StatusTransitionService,
) *FeatureRequestHandler {
	return &FeatureRequestHandler{
		featureService:    featureService,
		transitionService: transitionService,
	}
}

// List lista todos os feature requests, mais votados primeiro.
// @Summary List feature requests
// @Description Returns every feature request with owner and upvote count, ordered by upvote count
// @Tags Features
// @Produce json
// @Success 200 {array} dto.FeatureRequestResponse
// @Failure 500 {object} dto.ProblemResponse
// @Router /api/v1/features [get]
func (h *FeatureRequestHandler) List(c *gin.Context) {
	features, err := h.featureService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeatureRequestResponses(features))
}

// Create submete um novo feature request.
// @Summary Create feature request
// @Tags Features
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeatureRequestRequest true "Feature request"
// @Success 201 {object} dto.FeatureRequestResponse
// @Failure 400 {object} dto.ProblemResponse
// @Failure 401 {object} dto.ProblemResponse
// @Failure 500 {object} dto.ProblemResponse
// @Router /api/v1/features [post]
func (h *FeatureRequestHandler) Create(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	// identidade antes do corpo: anônimo com JSON inválido ainda é 401
	if err := entities.Authorize(identity, entities.PermissionFeatureCreate); err != nil {
		respondError(c, err)
		return
	}

	var req dto.CreateFeatureRequestRequest
	if !bindJSON(c, &req) {
		return
	}

	feature, err := h.featureService.Create(c.Request.Context(), identity, services.CreateFeatureRequestInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFeatureRequestResponse(feature))
}

// Get busca um feature request por ID.
// @Summary Get feature request
// @Tags Features
// @Produce json
// @Param id path string true "Feature request ID"
// @Success 200 {object} dto.FeatureRequestResponse
// @Failure 404 {object} dto.ProblemResponse
// @Failure 500 {object} dto.ProblemResponse
// @Router /api/v1/features/{id} [get]
func (h *FeatureRequestHandler) Get(c *gin.Context) {
	feature, err := h.featureService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeatureRequestResponse(feature))
}

// UpdateStatus altera o status de um feature request (somente admin).
// @Summary Update feature request status
// @Description Admin only. A missing feature request is reported as 500.
// @Tags Features
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Feature request ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.FeatureRequestResponse
// @Failure 400 {object} dto.ProblemResponse
// @Failure 401 {object} dto.ProblemResponse
// @Failure 403 {object} dto.ProblemResponse
// @Failure 500 {object} dto.ProblemResponse
// @Router /api/v1/features/{id} [patch]
func (h *FeatureRequestHandler) UpdateStatus(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if err := entities.Authorize(identity, entities.PermissionFeatureStatusWrite); err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	feature, err := h.transitionService.Transition(c.Request.Context(), identity, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeatureRequestResponse(feature))
}
