package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// Actor is the identity the session provider supplies for the current
// request. The core trusts it.
type Actor struct {
	ID   string     `json:"id"`
	Role types.Role `json:"role"`
}

// JWTClaims are the claims carried by a session token
type JWTClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenValidator implements JWT token validation
type TokenValidator struct {
	jwtSecret []byte
	issuer    string
	tokenTTL  time.Duration
}

// NewTokenValidator creates a new token validator
func NewTokenValidator(secret, issuer string, ttl time.Duration) *TokenValidator {
	return &TokenValidator{
		jwtSecret: []byte(secret),
		issuer:    issuer,
		tokenTTL:  ttl,
	}
}

// ValidateToken validates a JWT token and returns the actor it identifies
func (tv *TokenValidator) ValidateToken(tokenString string) (*Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tv.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, fmt.Errorf("token expired")
	}

	role := types.Role(claims.Role)
	if role != types.RoleDoctor && role != types.RolePatient {
		return nil, fmt.Errorf("unknown role: %s", claims.Role)
	}

	return &Actor{
		ID:   claims.UserID,
		Role: role,
	}, nil
}

// GenerateToken issues a session token for an actor
func (tv *TokenValidator) GenerateToken(actor *Actor) (string, error) {
	now := time.Now()

	claims := &JWTClaims{
		UserID: actor.ID,
		Role:   string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tv.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tv.tokenTTL)),
			Subject:   actor.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tv.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

type contextKey string

const actorContextKey contextKey = "actor"

// Middleware validates the bearer token and stores the actor on the request
// context. Requests without a valid token are rejected.
func (tv *TokenValidator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		actor, err := tv.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), actorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromContext returns the actor the middleware stored, if any
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(*Actor)
	return actor, ok
}
