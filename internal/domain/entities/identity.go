package entities

import (
	domainerrors "github.com/OSUMed/feature-request-app/internal/domain/errors"
)

// Identity é o resultado do provedor de identidade para a requisição atual.
// Um *Identity nil representa um visitante anônimo.
type Identity struct {
	UserID string
	Role   Role
}

// Authorize é o único guard de autorização usado pelos services.
// Retorna nil, ErrUnauthenticated (identidade ausente) ou ErrForbidden (sem permissão).
func Authorize(identity *Identity, permission Permission) error {
	if identity == nil || identity.UserID == "" {
		return domainerrors.ErrUnauthenticated
	}
	if !identity.Role.HasPermission(permission) {
		return domainerrors.ErrForbidden
	}
	return nil
}
