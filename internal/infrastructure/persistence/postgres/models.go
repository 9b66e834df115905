package postgres

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         *string `gorm:"type:varchar(255)"`
	PasswordHash *string `gorm:"type:varchar(255)"` // nil para contas OAuth
	Role         string  `gorm:"type:varchar(20);not null;default:user;index"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;index"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli"`
}

func (UserModel) TableName() string {
	return "users"
}

// FeatureRequestModel é o model GORM para feature requests
type FeatureRequestModel struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(500);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:pending;index;check:chk_feature_requests_status,status IN ('pending','planned','completed')"`
	UserID      string    `gorm:"type:uuid;not null;index"`
	User        UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt   int64     `gorm:"autoCreateTime:milli;index"`
	UpdatedAt   int64     `gorm:"autoUpdateTime:milli"`
}

func (FeatureRequestModel) TableName() string {
	return "feature_requests"
}

// UpvoteModel é o model GORM para upvotes.
// idx_upvotes_user_feature garante no máximo um voto por (user_id, feature_id).
type UpvoteModel struct {
	ID        string              `gorm:"type:uuid;primaryKey"`
	UserID    string              `gorm:"type:uuid;not null;uniqueIndex:idx_upvotes_user_feature,priority:1"`
	FeatureID string              `gorm:"type:uuid;not null;uniqueIndex:idx_upvotes_user_feature,priority:2;index"`
	User      UserModel           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Feature   FeatureRequestModel `gorm:"foreignKey:FeatureID;constraint:OnDelete:CASCADE"`
	CreatedAt int64               `gorm:"autoCreateTime:milli"`
}

func (UpvoteModel) TableName() string {
	return "upvotes"
}

// AdminActionModel é o model GORM do log de auditoria
type AdminActionModel struct {
	ID        string              `gorm:"type:uuid;primaryKey"`
	AdminID   string              `gorm:"type:uuid;not null;index"`
	FeatureID string              `gorm:"type:uuid;not null;index"`
	Action    string              `gorm:"type:varchar(20);not null"`
	Admin     UserModel           `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE"`
	Feature   FeatureRequestModel `gorm:"foreignKey:FeatureID;constraint:OnDelete:CASCADE"`
	CreatedAt int64               `gorm:"autoCreateTime:milli"`
}

func (AdminActionModel) TableName() string {
	return "admin_actions"
}
