package services

import (
	"context"
	"strconv"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
	"github.com/OSUMed/feature-request-app/internal/domain/errors"
	"github.com/OSUMed/feature-request-app/internal/domain/ports"
	"github.com/OSUMed/feature-request-app/internal/domain/repositories"
)

// FeatureRequestService contém a lógica de criação e listagem de feature requests
type FeatureRequestService struct {
	featureRepo repositories.FeatureRequestRepository
	logger      ports.Logger
}

// NewFeatureRequestService cria um novo FeatureRequestService
func NewFeatureRequestService(
	featureRepo repositories.FeatureRequestRepository,
	logger ports.Logger,
) *FeatureRequestService {
	return &FeatureRequestService{
		featureRepo: featureRepo,
		logger:      logger.With("service", "feature_requests"),
	}
}

// Regras derivadas dos limites da entidade. O título não pode ser só espaços;
// o texto é gravado como enviado.
var (
	titleTag       = "required,notblank,max=" + strconv.Itoa(entities.TitleMaxLength)
	descriptionTag = "required,max=" + strconv.Itoa(entities.DescriptionMaxLength)
)

// CreateFeatureRequestInput representa a entrada não confiável de criação
type CreateFeatureRequestInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (in CreateFeatureRequestInput) validate() error {
	return mergeValidation(
		validateVar("title", in.Title, titleTag),
		validateVar("description", in.Description, descriptionTag),
	)
}

// Create cria um feature request pendente para a identidade.
// Não há retry: criar não é idempotente.
func (s *FeatureRequestService) Create(ctx context.Context, identity *entities.Identity, input CreateFeatureRequestInput) (*entities.FeatureRequest, error) {
	if err := entities.Authorize(identity, entities.PermissionFeatureCreate); err != nil {
		return nil, err
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	feature := entities.NewFeatureRequest(identity.UserID, input.Title, input.Description)
	if err := s.featureRepo.Create(ctx, feature); err != nil {
		return nil, storageError(s.logger, "create feature request", err)
	}

	created, err := s.featureRepo.FindByID(ctx, feature.ID)
	if err != nil {
		return nil, storageError(s.logger, "load created feature request", err)
	}
	if created == nil {
		return nil, storageError(s.logger, "load created feature request", repositories.ErrNotFound)
	}

	s.logger.Info("feature request created",
		"feature_id", created.ID,
		"user_id", identity.UserID,
	)

	return created, nil
}

// List retorna todos os feature requests, mais votados primeiro
func (s *FeatureRequestService) List(ctx context.Context) ([]*entities.FeatureRequest, error) {
	features, err := s.featureRepo.List(ctx)
	if err != nil {
		return nil, storageError(s.logger, "list feature requests", err)
	}
	return features, nil
}

// Get busca um feature request por ID
func (s *FeatureRequestService) Get(ctx context.Context, id string) (*entities.FeatureRequest, error) {
	feature, err := s.featureRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(s.logger, "get feature request", err)
	}
	if feature == nil {
		return nil, errors.ErrFeatureRequestNotFound
	}
	return feature, nil
}
