package services

import (
	"context"
	"strings"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
	"github.com/OSUMed/feature-request-app/internal/domain/ports"
	"github.com/OSUMed/feature-request-app/internal/domain/repositories"
)

var statusTag = "required,oneof=" + strings.Join(statusValues(), " ")

func statusValues() []string {
	values := make([]string, 0, len(entities.Statuses))
	for _, s := range entities.Statuses {
		values = append(values, string(s))
	}
	return values
}

// StatusTransitionService permite que admins alterem o status de feature requests
type StatusTransitionService struct {
	featureRepo repositories.FeatureRequestRepository
	actionRepo  repositories.AdminActionRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewStatusTransitionService cria um novo StatusTransitionService
func NewStatusTransitionService(
	featureRepo repositories.FeatureRequestRepository,
	actionRepo repositories.AdminActionRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *StatusTransitionService {
	return &StatusTransitionService{
		featureRepo: featureRepo,
		actionRepo:  actionRepo,
		uow:         uow,
		logger:      logger.With("service", "status_transitions"),
	}
}

// Transition altera o status e grava o AdminAction na mesma transação: se a
// auditoria falhar, a mudança de status é desfeita. Um featureID inexistente
// resulta em StorageError, não em ErrFeatureRequestNotFound.
func (s *StatusTransitionService) Transition(ctx context.Context, identity *entities.Identity, featureID, newStatus string) (*entities.FeatureRequest, error) {
	if err := entities.Authorize(identity, entities.PermissionFeatureStatusWrite); err != nil {
		return nil, err
	}

	if err := validateVar("status", newStatus, statusTag); err != nil {
		return nil, err
	}
	status := entities.Status(newStatus)

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.featureRepo.UpdateStatus(txCtx, featureID, status); err != nil {
			return err
		}

		return s.actionRepo.Create(txCtx, &entities.AdminAction{
			AdminID:   identity.UserID,
			FeatureID: featureID,
			Action:    status,
		})
	})
	if err != nil {
		return nil, storageError(s.logger, "transition feature status", err)
	}

	updated, err := s.featureRepo.FindByID(ctx, featureID)
	if err != nil {
		return nil, storageError(s.logger, "load updated feature request", err)
	}
	if updated == nil {
		return nil, storageError(s.logger, "load updated feature request", repositories.ErrNotFound)
	}

	s.logger.Info("feature status changed",
		"feature_id", featureID,
		"admin_id", identity.UserID,
		"status", status,
	)

	return updated, nil
}
