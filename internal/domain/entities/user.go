package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/OSUMed/feature-request-app/internal/domain/valueobjects"
)

// ErrInvalidUserData indica uma entidade User inconsistente
var ErrInvalidUserData = errors.New("invalid user data")

// User representa um usuário do sistema
type User struct {
	ID           string
	Email        valueobjects.Email
	Name         *string
	PasswordHash *string // nil para contas criadas via OAuth
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword indica se o usuário pode autenticar com credenciais
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// Identity retorna a identidade usada pelos services
func (u *User) Identity() *Identity {
	return &Identity{UserID: u.ID, Role: u.Role}
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidUserData)
	}

	if u.Role != RoleAdmin && u.Role != RoleUser {
		return fmt.Errorf("%w: invalid role", ErrInvalidUserData)
	}

	return nil
}
