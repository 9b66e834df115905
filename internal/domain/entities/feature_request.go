package entities

import (
	"time"
)

// Status é o estado de triagem de um feature request
type Status string

const (
	StatusPending   Status = "pending"
	StatusPlanned   Status = "planned"
	StatusCompleted Status = "completed"
)

// Limites de tamanho aplicados na criação
const (
	TitleMaxLength       = 100
	DescriptionMaxLength = 500
)

// Statuses lista os estados válidos, na ordem do fluxo de triagem
var Statuses = []Status{StatusPending, StatusPlanned, StatusCompleted}

func (s Status) String() string {
	return string(s)
}

// Owner contém os campos públicos do perfil do dono
type Owner struct {
	Name  *string
	Email string
}

// FeatureRequest é uma ideia submetida por um usuário
type FeatureRequest struct {
	ID          string
	Title       string
	Description string
	Status      Status
	UserID      string
	Owner       Owner
	UpvoteCount int64 // cardinalidade do conjunto de upvotes, nunca um contador persistido
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewFeatureRequest cria um feature request pendente para o usuário
func NewFeatureRequest(userID, title, description string) *FeatureRequest {
	return &FeatureRequest{
		Title:       title,
		Description: description,
		Status:      StatusPending,
		UserID:      userID,
	}
}
