package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/expensio-backend/internal/domain"
)

// Verifier validates bearer tokens issued by the external identity service.
// Tokens are HS256 JWTs with the user ID as subject and role, name, and
// employee ID as custom claims.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a token verifier.
// secret must be at least 32 characters for HS256 security.
func NewVerifier(secret string, issuer string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// accessClaims extends standard JWT claims with the identity fields this
// backend consumes.
type accessClaims struct {
	jwt.RegisteredClaims
	Role       string `json:"role,omitempty"`
	Name       string `json:"name,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
}

// Verify parses and validates a bearer token and returns the caller identity.
func (v *Verifier) Verify(tokenString string) (domain.Actor, error) {
	if tokenString == "" {
		return domain.Actor{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return domain.Actor{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Actor{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != v.issuer {
		return domain.Actor{}, fmt.Errorf("invalid issuer: expected %s, got %s", v.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	role := domain.UserRole(claims.Role)
	if !role.IsValid() {
		return domain.Actor{}, fmt.Errorf("invalid role claim: %q", claims.Role)
	}

	return domain.Actor{
		UserID:     userID,
		EmployeeID: claims.EmployeeID,
		Name:       claims.Name,
		Role:       role,
	}, nil
}

// Sign creates a signed HS256 token for the given identity. The production
// issuer lives in the external identity service; Sign exists for tests and
// local tooling that need to mint tokens against the same secret.
func (v *Verifier) Sign(actor domain.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID.String(),
			Issuer:    v.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:       actor.Role.String(),
		Name:       actor.Name,
		EmployeeID: actor.EmployeeID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}
