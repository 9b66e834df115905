package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/OSUMed/feature-request-app/internal/domain/errors"
)

// ProblemResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ProblemResponse struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NewProblemI18n cria um problem document com título e detalhe traduzidos
func NewProblemI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ProblemResponse {
	problem := problems.NewDetailedProblem(status, T(c, detailKey, params...))
	problem.Type = baseURL(c) + problemType
	problem.Title = T(c, titleKey, params...)
	problem.Instance = c.Request.URL.Path

	return ProblemResponse{
		Type:     problem.Type,
		Title:    problem.Title,
		Status:   problem.Status,
		Detail:   problem.Detail,
		Instance: problem.Instance,
	}
}

// WriteProblem envia o problem com Content-Type application/problem+json e aborta a cadeia
func WriteProblem(c *gin.Context, problem ProblemResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(problem.Status, problem)
}

func baseURL(c *gin.Context) string {
	if url := c.GetString(BaseURLContextKey); url != "" {
		return url
	}
	return "http://localhost:8080"
}

// ValidationProblemI18n cria um problem 400 com as violações traduzidas
func ValidationProblemI18n(c *gin.Context, fields []domainerrors.FieldError) ProblemResponse {
	problem := NewProblemI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		400,
	)

	problem.Errors = make([]ValidationError, 0, len(fields))
	for _, f := range fields {
		problem.Errors = append(problem.Errors, ValidationError{
			Field:   f.Field,
			Message: translateField(c, f),
			Tag:     f.Tag,
		})
	}
	return problem
}

func translateField(c *gin.Context, f domainerrors.FieldError) string {
	key := "validation." + f.Tag
	msg := T(c, key, map[string]interface{}{"Field": f.Field, "Param": f.Param})
	if msg == key {
		return f.Message
	}
	return msg
}

// BadRequestProblemI18n cria um problem 400 para corpos que não puderam ser lidos
func BadRequestProblemI18n(c *gin.Context) ProblemResponse {
	return NewProblemI18n(
		c,
		domainerrors.ProblemTypeBadRequest,
		"error.bad_request.title",
		"error.bad_request.detail",
		400,
	)
}

// NotFoundProblemI18n cria um problem 404; resourceKey é traduzido antes de interpolar
func NotFoundProblemI18n(c *gin.Context, resourceKey string) ProblemResponse {
	return NewProblemI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		404,
		map[string]interface{}{"Resource": T(c, resourceKey)},
	)
}

// ConflictProblemI18n cria um problem 409
func ConflictProblemI18n(c *gin.Context, detailKey string) ProblemResponse {
	return NewProblemI18n(
		c,
		domainerrors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		409,
	)
}

// UnauthenticatedProblemI18n cria um problem 401 para requisições sem identidade
func UnauthenticatedProblemI18n(c *gin.Context) ProblemResponse {
	return NewProblemI18n(
		c,
		domainerrors.ProblemTypeUnauthenticated,
		"error.unauthenticated.title",
		"error.unauthenticated.detail",
		401,
	)
}

// InvalidCredentialsProblemI18n cria um problem 401 para login recusado
func InvalidCredentialsProblemI18n(c *gin.Context) ProblemResponse {
	return NewProblemI18n(
		c,
		domainerrors.ProblemTypeUnauthorized,
		"error.invalid_credentials.title",
		"error.invalid_credentials.detail",
		401,
	)
}

// ForbiddenProblemI18n cria um problem 403
func ForbiddenProblemI18n(c *gin.Context) ProblemResponse {
	return NewProblemI18n(
		c,
		domainerrors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
		403,
	)
}

// InternalProblemI18n cria um problem 500 sem detalhes internos
func InternalProblemI18n(c *gin.Context) ProblemResponse {
	return NewProblemI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}
