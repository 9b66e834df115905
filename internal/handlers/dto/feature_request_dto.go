package dto

import (
	"time"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
)

// CreateFeatureRequestRequest representa o corpo de POST /features.
// A validação de tamanho fica no service.
type CreateFeatureRequestRequest struct {
	Title       string `json:"title" example:"Dark mode"`
	Description string `json:"description" example:"Add a dark theme to the dashboard"`
}

// UpdateStatusRequest representa o corpo de PATCH /features/{id}
type UpdateStatusRequest struct {
	Status string `json:"status" example:"planned" enums:"pending,planned,completed"`
}

// OwnerResponse contém o perfil público de quem submeteu o feature request
type OwnerResponse struct {
	Name  *string `json:"name"`
	Email string  `json:"email"`
}

// FeatureRequestResponse representa um feature request com dono e contagem de votos
type FeatureRequestResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	UserID      string        `json:"user_id"`
	User        OwnerResponse `json:"user"`
	UpvoteCount int64         `json:"upvote_count"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// UpvoteResponse informa se o usuário atual votou
type UpvoteResponse struct {
	Upvoted bool `json:"upvoted"`
}

// ToFeatureRequestResponse converte uma entidade FeatureRequest para FeatureRequestResponse
func ToFeatureRequestResponse(feature *entities.FeatureRequest) FeatureRequestResponse {
	return FeatureRequestResponse{
		ID:          feature.ID,
		Title:       feature.Title,
		Description: feature.Description,
		Status:      feature.Status.String(),
		UserID:      feature.UserID,
		User: OwnerResponse{
			Name:  feature.Owner.Name,
			Email: feature.Owner.Email,
		},
		UpvoteCount: feature.UpvoteCount,
		CreatedAt:   feature.CreatedAt,
		UpdatedAt:   feature.UpdatedAt,
	}
}

// ToFeatureRequestResponses converte uma lista; nunca retorna nil para que o JSON seja []
func ToFeatureRequestResponses(features []*entities.FeatureRequest) []FeatureRequestResponse {
	responses := make([]FeatureRequestResponse, len(features))
	for i, feature := range features {
		responses[i] = ToFeatureRequestResponse(feature)
	}
	return responses
}
