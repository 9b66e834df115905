package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/OSUMed/feature-request-app/internal/domain/errors"
	"github.com/OSUMed/feature-request-app/internal/handlers/dto"
)

// respondError traduz erros de service para problem documents RFC 7807.
// Qualquer erro fora da taxonomia vira 500 sem detalhes.
func respondError(c *gin.Context, err error) {
	var validationErr *domainerrors.ValidationError

	switch {
	case errors.As(err, &validationErr):
		dto.WriteProblem(c, dto.ValidationProblemI18n(c, validationErr.Fields))
	case errors.Is(err, domainerrors.ErrUnauthenticated):
		dto.WriteProblem(c, dto.UnauthenticatedProblemI18n(c))
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		dto.WriteProblem(c, dto.InvalidCredentialsProblemI18n(c))
	case errors.Is(err, domainerrors.ErrForbidden):
		dto.WriteProblem(c, dto.ForbiddenProblemI18n(c))
	case errors.Is(err, domainerrors.ErrFeatureRequestNotFound):
		dto.WriteProblem(c, dto.NotFoundProblemI18n(c, "resource.feature_request"))
	case errors.Is(err, domainerrors.ErrUserNotFound):
		dto.WriteProblem(c, dto.NotFoundProblemI18n(c, "resource.user"))
	case errors.Is(err, domainerrors.ErrEmailAlreadyExists):
		dto.WriteProblem(c, dto.ConflictProblemI18n(c, "error.conflict.detail"))
	default:
		// fica em c.Errors para o access log
		_ = c.Error(err)
		dto.WriteProblem(c, dto.InternalProblemI18n(c))
	}
}

// bindJSON decodifica o corpo; JSON malformado vira 400
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(err)
		dto.WriteProblem(c, dto.BadRequestProblemI18n(c))
		return false
	}
	return true
}
