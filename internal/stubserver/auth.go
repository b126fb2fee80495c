package stubserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aahadaazar/patients-app/internal/client/models"
)

type ctxKey int

const roleKey ctxKey = iota

const tokenTTL = 24 * time.Hour

// issueToken creates a signed HS256 access token carrying the account's
// identity and role. The client treats it as opaque.
func (s *Server) issueToken(acc account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  acc.id,
		"role": string(acc.role),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

// bearerAuth rejects requests without a valid bearer token with 401,
// matching the contract the client's forced-invalidation logic relies on.
func (s *Server) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			writeError(w, http.StatusUnauthorized, "missing_token", "bearer token required")
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.signingKey, nil
		})
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "invalid_token", "token is invalid or expired")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid_token", "unexpected claims")
			return
		}
		role, _ := claims["role"].(string)

		ctx := context.WithValue(r.Context(), roleKey, models.Role(role))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole enforces the mutation policy server-side. The client's role
// gating is a UX control only; this is the actual boundary.
func (s *Server) requireRole(required models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(roleKey).(models.Role)
			if !role.Satisfies(required) {
				writeError(w, http.StatusForbidden, "forbidden", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
