package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"crowdfund/internal/auth"
	"crowdfund/internal/domain"
)

type principalKey struct{}

// Principal is the authenticated caller.
type Principal struct {
	UserID   string
	Username string
	Role     domain.UserRole
}

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

// AuthJWT rejects requests without a valid bearer token and stores the
// caller in the request context.
func AuthJWT(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing authorization")
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid authorization")
				return
			}
			claims, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
				return
			}
			ctx := ContextWithPrincipal(r.Context(), Principal{
				UserID:   claims.Subject,
				Username: claims.Username,
				Role:     claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole lets through only callers with role. It must run after AuthJWT.
func RequireRole(role domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing user context")
				return
			}
			if p.Role != role {
				writeError(w, http.StatusForbidden, "forbidden", "requires "+string(role)+" role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok && p.UserID != ""
}

// UserIDFromContext returns the caller id or "".
func UserIDFromContext(ctx context.Context) string {
	p, _ := PrincipalFromContext(ctx)
	return p.UserID
}

func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	if strings.TrimSpace(p.UserID) == "" {
		return ctx
	}
	return context.WithValue(ctx, principalKey{}, p)
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": errCode, "message": message},
	})
}
