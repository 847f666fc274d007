package auth

import (
	"errors"
	"time"

	"workhive_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the identity a bearer credential resolves to.
type Claims struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
	Name   string          `json:"name,omitempty"`

	jwt.RegisteredClaims
}

// TokenService issues and validates HMAC-signed access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration

	now func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate issues a signed token embedding {id, role, display name}.
func (s *TokenService) Generate(user *models.User) (string, error) {
	if len(s.secret) == 0 || s.ttl <= 0 {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates a token string and returns its claims.
func (s *TokenService) Parse(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if token == nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.UserID == "" || !models.IsValidUserRole(claims.Role) {
		return nil, ErrTokenInvalid
	}

	return &claims, nil
}
