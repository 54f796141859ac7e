package middlewares

import (
	"context"
	"net/http"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const HeaderAPIKey = "x-api-key"

// APIKeyAuth marks requests carrying the superadmin key as an admin
// identity. Requests without the header pass through untouched.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(HeaderAPIKey)

		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if m.InternalConfig.App.SuperadminAPIKey == "" || apiKey != m.InternalConfig.App.SuperadminAPIKey {
			utils.LogSecurityEvent(m.Log, "invalid_api_key", utils.GetRequestID(r.Context()), "high",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH_KEY, true)
		ctx = context.WithValue(ctx, constvars.CONTEXT_STAFF_USERNAME_KEY, constvars.SuperadminAPIKeyUsername)
		ctx = context.WithValue(ctx, constvars.CONTEXT_STAFF_ROLE_KEY, constvars.StaffRoleAdmin)

		m.Log.Info("API Key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isAPIKeyAuth(ctx context.Context) bool {
	apiKeyAuth, ok := ctx.Value(constvars.CONTEXT_API_KEY_AUTH_KEY).(bool)
	return ok && apiKeyAuth
}
