package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/expensio-backend/internal/domain"
	"github.com/heartmarshall/expensio-backend/pkg/ctxutil"
)

//go:generate moq -out token_verifier_mock_test.go . tokenVerifier

type tokenVerifier interface {
	Verify(token string) (domain.Actor, error)
}

// Auth verifies the bearer token and attaches the caller identity to the
// request context. Requests without a token pass through anonymously;
// services reject them with ErrUnauthorized where identity is required.
// A present but invalid token is always a 401.
func Auth(verifier tokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			actor, err := verifier.Verify(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
