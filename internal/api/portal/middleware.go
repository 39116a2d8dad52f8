package portal

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/apptime/portal-server/internal/api/schema"
	"github.com/apptime/portal-server/internal/session"
)

var (
	contextValueSession = "session"

	sessionTokenCookieName = "session_token"
)

// MiddlewareVerifySession makes sure that the requesting client has provided
// a verifiable session token. A stale token answers with the refresh token
// signal so the client runs its re-authentication flow; a missing one with a
// plain 401. On success the resolved session is injected into the request
// context.
func (service *Service) MiddlewareVerifySession(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		resolution := service.Authority.Resolve(extractToken(request))
		switch resolution.State {
		case session.StateUnauthenticated:
			service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrUnauthorized)
		case session.StateStale:
			service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrRefreshToken)
		case session.StateAuthenticated:
			request = request.WithContext(context.WithValue(request.Context(), contextValueSession, resolution.Session))
			next(writer, request)
		}
	}
}

// MiddlewareCheckAdmin makes sure that the requesting client acts in the administrator role
func (service *Service) MiddlewareCheckAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		ses, ok := request.Context().Value(contextValueSession).(*session.Session)
		if !ok {
			service.writer.WriteInternalError(writer, errors.New("admin check without session verification"))
			return
		}
		if ses.Role != session.RoleAdmin {
			service.writer.WriteErrors(writer, http.StatusForbidden, schema.ErrForbidden)
			return
		}
		next(writer, request)
	}
}

// extractToken reads the raw session token out of the 'Authorization' header
// or, if that is absent, the session cookie. An empty string means no token
// was supplied at all.
func extractToken(request *http.Request) string {
	header := request.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	cookie, err := request.Cookie(sessionTokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func unsetCookie(writer http.ResponseWriter, name string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Second),
		HttpOnly: true,
	})
}
