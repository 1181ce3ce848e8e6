package middleware

import (
	"context"
	"net/http"
	"strings"

	"pick-your-pup/internal/platform/httpjson"
	"pick-your-pup/internal/platform/logger"
	"pick-your-pup/internal/platform/metrics"
	"pick-your-pup/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// RequireAuth corta el request si no hay identidad válida:
// - sin token => 401
// - token inválido/expirado/adulterado => 403
// Si pasa, deja auth.Claims en el contexto.
func RequireAuth(verifier auth.AuthVerifier, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				m.AuthFailure("missing_token")
				httpjson.Error(w, http.StatusUnauthorized, "Access token required")
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				m.AuthFailure("invalid_token")
				logger.FromContext(r.Context(), nil).Debug("token rejected", map[string]any{"err": err})
				httpjson.Error(w, http.StatusForbidden, "Invalid token")
				return
			}

			ctx := WithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// bearerToken acepta "Bearer <t>"; cualquier otro esquema se toma como token tal cual
// para que termine en 403 y no en 401.
func bearerToken(authHeader string) string {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		if strings.EqualFold(parts[0], "Bearer") {
			return ""
		}
		return parts[0]
	}
	return strings.TrimSpace(parts[1])
}
