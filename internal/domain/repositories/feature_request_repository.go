package repositories

import (
	"context"
	"errors"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
)

// ErrNotFound é retornado quando uma escrita não encontra a linha alvo
var ErrNotFound = errors.New("record not found")

// FeatureRequestRepository define a persistência de feature requests.
// Leituras sempre trazem o perfil público do dono e a contagem de upvotes.
type FeatureRequestRepository interface {
	Create(ctx context.Context, feature *entities.FeatureRequest) error
	// FindByID retorna nil, nil quando o feature request não existe
	FindByID(ctx context.Context, id string) (*entities.FeatureRequest, error)
	// List ordena por contagem de upvotes DESC, created_at ASC, id ASC
	List(ctx context.Context) ([]*entities.FeatureRequest, error)
	// UpdateStatus retorna ErrNotFound quando nenhuma linha foi atualizada
	UpdateStatus(ctx context.Context, id string, status entities.Status) error
}

// UpvoteRepository define a persistência de upvotes
type UpvoteRepository interface {
	// Toggle remove o upvote do par (userID, featureID) se existir, senão cria.
	// Retorna true quando o par termina votado.
	Toggle(ctx context.Context, userID, featureID string) (bool, error)
	Exists(ctx context.Context, userID, featureID string) (bool, error)
}

// AdminActionRepository grava o log de auditoria (somente escrita)
type AdminActionRepository interface {
	Create(ctx context.Context, action *entities.AdminAction) error
}
