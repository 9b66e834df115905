package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/OSUMed/feature-request-app/internal/domain/repositories"
)

// UpvoteRepository implementa repositories.UpvoteRepository
type UpvoteRepository struct {
	db *gorm.DB
}

// NewUpvoteRepository cria um novo UpvoteRepository
func NewUpvoteRepository(db *gorm.DB) repositories.UpvoteRepository {
	return &UpvoteRepository{db: db}
}

// Toggle não faz leitura prévia: tenta remover o voto e, se nada foi removido,
// insere com ON CONFLICT DO NOTHING sobre idx_upvotes_user_feature.
func (r *UpvoteRepository) Toggle(ctx context.Context, userID, featureID string) (bool, error) {
	var voted bool

	err := dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		deleted := tx.Where("user_id = ? AND feature_id = ?", userID, featureID).Delete(&UpvoteModel{})
		if deleted.Error != nil {
			return deleted.Error
		}
		if deleted.RowsAffected > 0 {
			voted = false
			return nil
		}

		model := &UpvoteModel{
			ID:        newID(),
			UserID:    userID,
			FeatureID: featureID,
		}
		// RowsAffected == 0 aqui significa que um toggle concorrente inseriu
		// o mesmo par; o par continua votado.
		inserted := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "feature_id"}},
				DoNothing: true,
			}).
			Create(model)
		if inserted.Error != nil {
			return inserted.Error
		}

		voted = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return voted, nil
}

func (r *UpvoteRepository) Exists(ctx context.Context, userID, featureID string) (bool, error) {
	if !isUUID(userID) || !isUUID(featureID) {
		return false, nil
	}

	var count int64
	err := dbFromContext(ctx, r.db).
		Model(&UpvoteModel{}).
		Where("user_id = ? AND feature_id = ?", userID, featureID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
