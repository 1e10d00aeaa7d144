package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RoleUser is the fixed role claim stamped into every issued token.
const RoleUser = "User"

var ErrInvalidToken = errors.New("invalid token")

// Claims is the claim set carried by every issued token. Sid holds the
// user id; the registered subject is the first+last name concatenation.
type Claims struct {
	Sid  string `json:"sid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and validates signed HS256 tokens.
type Manager struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
}

// NewManager creates a token manager. Tokens expire expiryMinutes after
// issuance.
func NewManager(secret, issuer, audience string, expiryMinutes int) *Manager {
	return &Manager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		expiry:   time.Duration(expiryMinutes) * time.Minute,
	}
}

// GenerateToken signs a token for the given user. Each token carries a
// unique jti so two tokens issued for the same user stay distinguishable.
func (m *Manager) GenerateToken(userID uuid.UUID, firstName, lastName string) (string, error) {
	now := time.Now()
	claims := Claims{
		Sid:  userID.String(),
		Role: RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   firstName + lastName,
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken parses and verifies a token string. Signature, issuer,
// audience and expiry are all checked with zero leeway. It returns
// ErrInvalidToken on any failure and never panics past this boundary.
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
