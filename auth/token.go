package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/t-rethnee/restaurant-console/models"
)

// Claims carried by session tokens issued at login.
type Claims struct {
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

const tokenTTL = 24 * time.Hour

// GenerateToken creates a signed JWT for an authenticated user.
func (s *Service) GenerateToken(user models.User, sessionID uuid.UUID) (string, error) {
	now := s.clk.Now()
	claims := Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}
	return signed, nil
}

// VerifyToken parses and validates a session token.
func (s *Service) VerifyToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.clk.Now))
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}
	return claims, nil
}

// RequireRole enforces that the token's role is one of the allowed roles.
func RequireRole(claims *Claims, roles ...models.UserRole) error {
	for _, r := range roles {
		if claims.Role == r {
			return nil
		}
	}
	return errors.Errorf("access denied for role %q", claims.Role)
}
