package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
	"github.com/OSUMed/feature-request-app/internal/domain/repositories"
)

// featureRequestRow é o resultado da consulta com dono e contagem de votos
type featureRequestRow struct {
	ID          string
	Title       string
	Description string
	Status      string
	UserID      string
	CreatedAt   int64
	UpdatedAt   int64
	OwnerName   *string
	OwnerEmail  string
	UpvoteCount int64
}

// FeatureRequestRepository implementa repositories.FeatureRequestRepository
type FeatureRequestRepository struct {
	db *gorm.DB
}

// NewFeatureRequestRepository cria um novo FeatureRequestRepository
func NewFeatureRequestRepository(db *gorm.DB) repositories.FeatureRequestRepository {
	return &FeatureRequestRepository{db: db}
}

func (r *FeatureRequestRepository) Create(ctx context.Context, feature *entities.FeatureRequest) error {
	model := &FeatureRequestModel{
		ID:          feature.ID,
		Title:       feature.Title,
		Description: feature.Description,
		Status:      string(feature.Status),
		UserID:      feature.UserID,
		CreatedAt:   toMillis(feature.CreatedAt),
		UpdatedAt:   toMillis(feature.UpdatedAt),
	}
	if model.ID == "" {
		model.ID = newID()
	}

	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return err
	}

	feature.ID = model.ID
	feature.CreatedAt = fromMillis(model.CreatedAt)
	feature.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *FeatureRequestRepository) FindByID(ctx context.Context, id string) (*entities.FeatureRequest, error) {
	if !isUUID(id) {
		return nil, nil
	}

	var rows []featureRequestRow
	if err := r.withOwnerAndCount(ctx).Where("f.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return r.toEntity(&rows[0]), nil
}

func (r *FeatureRequestRepository) List(ctx context.Context) ([]*entities.FeatureRequest, error) {
	var rows []featureRequestRow

	// Desempate determinístico: mais antigo primeiro, depois id
	err := r.withOwnerAndCount(ctx).
		Order("upvote_count DESC").
		Order("f.created_at ASC").
		Order("f.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	features := make([]*entities.FeatureRequest, 0, len(rows))
	for i := range rows {
		features = append(features, r.toEntity(&rows[i]))
	}
	return features, nil
}

func (r *FeatureRequestRepository) UpdateStatus(ctx context.Context, id string, status entities.Status) error {
	if !isUUID(id) {
		return repositories.ErrNotFound
	}

	result := dbFromContext(ctx, r.db).
		Model(&FeatureRequestModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// withOwnerAndCount monta a consulta base: a contagem vem sempre do conjunto de upvotes
func (r *FeatureRequestRepository) withOwnerAndCount(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).
		Table("feature_requests AS f").
		Select("f.id, f.title, f.description, f.status, f.user_id, f.created_at, f.updated_at, " +
			"u.name AS owner_name, u.email AS owner_email, COUNT(up.id) AS upvote_count").
		Joins("JOIN users u ON u.id = f.user_id").
		Joins("LEFT JOIN upvotes up ON up.feature_id = f.id").
		Group("f.id, u.name, u.email")
}

func (r *FeatureRequestRepository) toEntity(row *featureRequestRow) *entities.FeatureRequest {
	return &entities.FeatureRequest{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Status:      entities.Status(row.Status),
		UserID:      row.UserID,
		Owner: entities.Owner{
			Name:  row.OwnerName,
			Email: row.OwnerEmail,
		},
		UpvoteCount: row.UpvoteCount,
		CreatedAt:   fromMillis(row.CreatedAt),
		UpdatedAt:   fromMillis(row.UpdatedAt),
	}
}
