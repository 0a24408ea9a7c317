package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yukikurage/game-journal-api/internal/constants"
)

// ErrInvalidToken is returned for every token that cannot be trusted:
// missing, malformed, expired or signed with another key.
var ErrInvalidToken = errors.New("invalid session token")

// Identity is the self-contained user assertion carried by a session token.
type Identity struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type claims struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a TokenManager signing with secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    constants.TokenTTL,
		now:    time.Now,
	}
}

// Issue signs a token for identity that expires after the session TTL.
func (m *TokenManager) Issue(identity Identity) (string, error) {
	now := m.now()
	c := claims{
		ID:       identity.ID,
		Username: identity.Username,
		Email:    identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(identity.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}

// Validate checks signature and expiry and returns the embedded identity.
func (m *TokenManager) Validate(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, ErrInvalidToken
	}

	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid || c.ID == 0 {
		return Identity{}, ErrInvalidToken
	}

	return Identity{ID: c.ID, Username: c.Username, Email: c.Email}, nil
}
