package services

import (
	"context"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
	"github.com/OSUMed/feature-request-app/internal/domain/errors"
	"github.com/OSUMed/feature-request-app/internal/domain/ports"
	"github.com/OSUMed/feature-request-app/internal/domain/repositories"
)

// UpvoteService alterna votos de usuários em feature requests
type UpvoteService struct {
	featureRepo repositories.FeatureRequestRepository
	upvoteRepo  repositories.UpvoteRepository
	logger      ports.Logger
}

// NewUpvoteService cria um novo UpvoteService
func NewUpvoteService(
	featureRepo repositories.FeatureRequestRepository,
	upvoteRepo repositories.UpvoteRepository,
	logger ports.Logger,
) *UpvoteService {
	return &UpvoteService{
		featureRepo: featureRepo,
		upvoteRepo:  upvoteRepo,
		logger:      logger.With("service", "upvotes"),
	}
}

// Toggle remove o voto se existir, senão cria. Retorna true quando o usuário
// termina votado. A contagem não é retornada: ela é sempre derivada do
// conjunto de upvotes.
func (s *UpvoteService) Toggle(ctx context.Context, identity *entities.Identity, featureID string) (bool, error) {
	if err := entities.Authorize(identity, entities.PermissionUpvoteToggle); err != nil {
		return false, err
	}

	feature, err := s.featureRepo.FindByID(ctx, featureID)
	if err != nil {
		return false, storageError(s.logger, "find feature request", err)
	}
	if feature == nil {
		return false, errors.ErrFeatureRequestNotFound
	}

	voted, err := s.upvoteRepo.Toggle(ctx, identity.UserID, featureID)
	if err != nil {
		return false, storageError(s.logger, "toggle upvote", err)
	}

	s.logger.Debug("upvote toggled",
		"feature_id", featureID,
		"user_id", identity.UserID,
		"upvoted", voted,
	)

	return voted, nil
}

// Status informa se a identidade votou no feature request.
// Visitantes anônimos nunca votaram.
func (s *UpvoteService) Status(ctx context.Context, identity *entities.Identity, featureID string) (bool, error) {
	if identity == nil {
		return false, nil
	}

	voted, err := s.upvoteRepo.Exists(ctx, identity.UserID, featureID)
	if err != nil {
		return false, storageError(s.logger, "check upvote", err)
	}
	return voted, nil
}
