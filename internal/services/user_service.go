package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
	"github.com/OSUMed/feature-request-app/internal/domain/errors"
	"github.com/OSUMed/feature-request-app/internal/domain/ports"
	"github.com/OSUMed/feature-request-app/internal/domain/repositories"
	"github.com/OSUMed/feature-request-app/internal/domain/valueobjects"
)

const bcryptCost = 10

// UserService contém a lógica de negócio para usuários e login por credenciais
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger.With("service", "users"),
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Email    string        `json:"email" validate:"required,email"`
	Name     string        `json:"name" validate:"max=255"`
	Password string        `json:"password" validate:"required,min=8,max=72"`
	Role     entities.Role `json:"role" validate:"omitempty,oneof=user admin"`
}

// CreateUser cria um novo usuário com senha em bcrypt.
// Usado pelo seed; o papel só é definido aqui, nunca alterado pelos services.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.NewValidationError("email", "email", "", "email must be a valid email")
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, storageError(s.logger, "find user by email", err)
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	role := input.Role
	if role == "" {
		role = entities.RoleUser
	}

	user := &entities.User{
		Email:        email,
		PasswordHash: &hashStr,
		Role:         role,
	}
	if input.Name != "" {
		user.Name = &input.Name
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, storageError(s.logger, "create user", err)
	}

	s.logger.Info("user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(s.logger, "get user", err)
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// Authenticate verifica email e senha. Contas sem senha (OAuth) não entram
// por credenciais. Qualquer divergência vira ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	normalized, err := valueobjects.NewEmail(email)
	if err != nil || password == "" {
		return nil, errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, storageError(s.logger, "find user by email", err)
	}
	if user == nil || !user.HasPassword() {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return user, nil
}
