package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager signs and verifies access tokens. Tokens carry only identity;
// authorization state is resolved fresh on every request.
type Manager struct {
	secret          []byte
	tokenExpireMins int
}

type Claims struct {
	jwt.RegisteredClaims
	// Kind names the principal family the subject belongs to, so the
	// authentication pipeline knows which identity table to re-fetch from.
	Kind string `json:"kind,omitempty"`
}

func NewManager(secret string, tokenExpireMins int) *Manager {
	return &Manager{
		secret:          []byte(secret),
		tokenExpireMins: tokenExpireMins,
	}
}

// Generate issues a signed token with the principal's email as subject.
func (m *Manager) Generate(email, kind string) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(m.tokenExpireMins) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   email,
		},
		Kind: kind,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate verifies signature and expiry and returns the claims.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
