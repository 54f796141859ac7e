package middlewares

import (
	"context"
	"net/http"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

// bearerOrCookie extracts the session token, preferring the Authorization header.
func bearerOrCookie(r *http.Request) string {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := r.Cookie(constvars.StaffSessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// Authenticate requires a staff session or the superadmin API key.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAPIKeyAuth(r.Context()) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := utils.GetRequestID(r.Context())
		token := bearerOrCookie(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.AuthUsecase.ResolveSession(r.Context(), token)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate rejected session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, session.SessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_STAFF_USERNAME_KEY, session.Username)
		ctx = context.WithValue(ctx, constvars.CONTEXT_STAFF_ROLE_KEY, session.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if utils.GetStaffRole(r.Context()) != constvars.StaffRoleAdmin {
			utils.LogSecurityEvent(m.Log, "admin_access_denied", utils.GetRequestID(r.Context()), "medium",
				zap.String(constvars.LoggingUsernameKey, utils.GetStaffUsername(r.Context())),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrPermissionDenied(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
