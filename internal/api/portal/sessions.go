package portal

import (
	"net/http"

	"github.com/apptime/portal-server/internal/api/schema"
	"github.com/apptime/portal-server/internal/api/validation"
	"github.com/apptime/portal-server/internal/permission"
	"github.com/apptime/portal-server/internal/routing"
	"github.com/apptime/portal-server/internal/session"
	"github.com/google/uuid"
)

type routeResponse struct {
	Route string `json:"route"`
}

// EndpointGetSession handles the 'GET /v1/session' endpoint
func (service *Service) EndpointGetSession(writer http.ResponseWriter, request *http.Request) {
	ses := request.Context().Value(contextValueSession).(*session.Session)
	service.writer.WriteJSON(writer, ses)
}

// EndpointGetLandingRoute handles the 'GET /v1/session/landing' endpoint.
// Unauthenticated callers are served too; they land on the public home
// route. A stale token answers with the refresh token signal instead.
func (service *Service) EndpointGetLandingRoute(writer http.ResponseWriter, request *http.Request) {
	resolution := service.Authority.Resolve(extractToken(request))
	if resolution.State == session.StateStale {
		service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrRefreshToken)
		return
	}

	role := session.RoleUnknown
	if resolution.State == session.StateAuthenticated {
		role = resolution.Session.Role
	}
	service.writer.WriteJSON(writer, routeResponse{Route: routing.LandingRouteFor(role)})
}

// EndpointSignOut handles the 'POST /v1/session/sign_out' endpoint.
// It clears the caller's grant context, unsets the session cookie and
// answers with the route the caller should be redirected to. Stale and
// missing tokens are signed out as well; there is nothing to refuse.
func (service *Service) EndpointSignOut(writer http.ResponseWriter, request *http.Request) {
	resolution := service.Authority.Resolve(extractToken(request))

	role := session.RoleUnknown
	if resolution.State == session.StateAuthenticated {
		role = resolution.Session.Role
		if customerID, err := uuid.Parse(resolution.Session.CustomerID); err == nil {
			key := customerID.String()
			if cached, ok := service.grantContexts.Lookup(key); ok {
				cached.Clear()
			}
			service.grantContexts.Unset(key)
		}
	}

	unsetCookie(writer, sessionTokenCookieName)
	service.writer.WriteJSON(writer, routeResponse{Route: routing.SignOutRouteFor(role)})
}

// EndpointGetSessionGrants handles the 'GET /v1/session/permissions' endpoint
func (service *Service) EndpointGetSessionGrants(writer http.ResponseWriter, request *http.Request) {
	ses := request.Context().Value(contextValueSession).(*session.Session)

	grantCtx, err := service.grantContext(request.Context(), ses)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	grants := grantCtx.Grants()
	if grants == nil {
		grants = []permission.Grant{}
	}
	service.writer.WriteJSON(writer, grants)
}

type endpointEvaluateNavigationRequestPayload struct {
	Targets []routing.Target `json:"targets"`
}

// EndpointEvaluateNavigation handles the 'POST /v1/session/navigation' endpoint.
// It evaluates the posted navigation targets against the caller's role and
// grant set and answers with the allowed subset. Route-guard collaborators
// use the same endpoint to check a single guarded action.
func (service *Service) EndpointEvaluateNavigation(writer http.ResponseWriter, request *http.Request) {
	ses := request.Context().Value(contextValueSession).(*session.Session)

	payload, validationErrs, err := validation.UnmarshalBody[endpointEvaluateNavigationRequestPayload](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	grantCtx, err := service.grantContext(request.Context(), ses)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	allowed := permission.Filter(ses.Role, grantCtx.Grants(), payload.Targets)
	service.writer.WriteJSON(writer, allowed)
}
