package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
	"github.com/OSUMed/feature-request-app/internal/domain/repositories"
)

// AdminActionRepository implementa repositories.AdminActionRepository
type AdminActionRepository struct {
	db *gorm.DB
}

// NewAdminActionRepository cria um novo AdminActionRepository
func NewAdminActionRepository(db *gorm.DB) repositories.AdminActionRepository {
	return &AdminActionRepository{db: db}
}

func (r *AdminActionRepository) Create(ctx context.Context, action *entities.AdminAction) error {
	model := &AdminActionModel{
		ID:        newID(),
		AdminID:   action.AdminID,
		FeatureID: action.FeatureID,
		Action:    string(action.Action),
	}

	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return err
	}

	action.ID = model.ID
	action.CreatedAt = fromMillis(model.CreatedAt)
	return nil
}
