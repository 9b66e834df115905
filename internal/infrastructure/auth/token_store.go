package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/OSUMed/feature-request-app/internal/domain/ports"
)

const revokedTokenKeyPrefix = "revoked:access_token:"

// TokenStore guarda no Redis os ids de tokens revogados até expirarem.
// Com client nil (REDIS_URL vazio) nenhum token é revogado.
type TokenStore struct {
	client *redis.Client
	logger ports.Logger
}

// NewTokenStore cria um TokenStore; client pode ser nil
func NewTokenStore(client *redis.Client, logger ports.Logger) *TokenStore {
	return &TokenStore{client: client, logger: logger}
}

// NewRedisClient cria e testa um client a partir de uma URL redis://
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// Enabled indica se há um Redis configurado
func (s *TokenStore) Enabled() bool {
	return s != nil && s.client != nil
}

// Revoke marca o token como revogado pelo tempo restante de validade
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if !s.Enabled() {
		return nil
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	return s.client.Set(ctx, revokedTokenKeyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked verifica se o token foi revogado.
// Falhas do Redis são logadas e tratadas como não revogado.
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) bool {
	if !s.Enabled() {
		return false
	}

	err := s.client.Get(ctx, revokedTokenKeyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		s.logger.Warn("token revocation lookup failed", "error", err)
		return false
	}
	return true
}

// Close fecha o client Redis, se houver
func (s *TokenStore) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.client.Close()
}
