package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
)

const issuer = "feature-request-app"

var (
	// ErrInvalidToken é retornado para tokens malformados, expirados ou com assinatura inválida
	ErrInvalidToken = errors.New("invalid token")
)

// Claims representa as claims do access token.
// Subject carrega o id do usuário e ID (jti) identifica o token para revogação.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity converte as claims na identidade usada pelos services
func (c *Claims) Identity() *entities.Identity {
	return &entities.Identity{
		UserID: c.Subject,
		Role:   entities.ParseRole(c.Role),
	}
}

// IssuedToken é um access token assinado
type IssuedToken struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// JWTService emite e valida access tokens HS256
type JWTService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTService cria um novo JWTService
func NewJWTService(secret string, expiry time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue gera um access token para o usuário
func (s *JWTService) Issue(user *entities.User) (*IssuedToken, error) {
	now := s.now()
	expiresAt := now.Add(s.expiry)
	tokenID := uuid.NewString()

	claims := &Claims{
		Role:  string(user.Role),
		Email: user.Email.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   user.ID,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &IssuedToken{Token: token, TokenID: tokenID, ExpiresAt: expiresAt}, nil
}

// Parse valida o token e retorna as claims
func (s *JWTService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
