package entities

import "time"

// Upvote marca o voto de um usuário em um feature request.
// Existe no máximo um por par (UserID, FeatureID).
type Upvote struct {
	ID        string
	UserID    string
	FeatureID string
	CreatedAt time.Time
}

// AdminAction é o registro de auditoria de uma mudança de status
type AdminAction struct {
	ID        string
	AdminID   string
	FeatureID string
	Action    Status
	CreatedAt time.Time
}
