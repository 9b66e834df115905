package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
	domainerrors "github.com/OSUMed/feature-request-app/internal/domain/errors"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/config"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/logging"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/persistence/postgres"
	"github.com/OSUMed/feature-request-app/internal/services"
)

// seed aplica as migrations e cria o usuário admin, se ainda não existir
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	defer func() { _ = postgres.Close(db) }()

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userService := services.NewUserService(postgres.NewUserRepository(db), logger)
	admin, err := userService.CreateUser(ctx, services.CreateUserInput{
		Email:    cfg.Seed.AdminEmail,
		Name:     cfg.Seed.AdminName,
		Password: cfg.Seed.AdminPassword,
		Role:     entities.RoleAdmin,
	})
	switch {
	case errors.Is(err, domainerrors.ErrEmailAlreadyExists):
		logger.Info("admin user already exists", "email", cfg.Seed.AdminEmail)
	case err != nil:
		logger.Error("failed to create admin user", "error", err)
		log.Fatal(err)
	default:
		logger.Info("admin user created", "user_id", admin.ID, "email", admin.Email.String())
	}
}
