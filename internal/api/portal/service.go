package portal

import (
	"context"
	"net/http"
	"time"

	"github.com/apptime/portal-server/internal/api/schema"
	"github.com/apptime/portal-server/internal/cache"
	"github.com/apptime/portal-server/internal/config"
	"github.com/apptime/portal-server/internal/permission"
	"github.com/apptime/portal-server/internal/session"
	"github.com/apptime/portal-server/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	grantContextLifetime        = 5 * time.Minute
	grantContextCleanupInterval = 10 * time.Second
)

// Service represents the portal API service
type Service struct {
	server *http.Server

	Config *config.Config

	Storage storage.Driver

	Authority *session.Authority

	grantContexts *cache.ExpiringMap[string, *permission.Context]

	writer *schema.Writer
}

// Startup starts up the portal API
func (service *Service) Startup() error {
	// Create the HTTP schema writer
	service.writer = &schema.Writer{
		InternalErrorHook: func(err error) {
			log.Error().Err(err).Msg("the portal API experienced an unexpected error")
		},
	}

	// Create the per-session grant context cache
	service.grantContexts = cache.NewExpiring[string, *permission.Context](grantContextLifetime, grantContextCleanupInterval)

	// Create the HTTP router
	router := chi.NewRouter()
	router.Use(middleware.RedirectSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{service.Config.PortalAPIAllowedOrigin},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusMethodNotAllowed, schema.ErrMethodNotAllowed)
	})

	// Register the session controller endpoints
	router.Get("/v1/session", withMiddlewares(service.EndpointGetSession, service.MiddlewareVerifySession))
	router.Get("/v1/session/landing", service.EndpointGetLandingRoute)
	router.Post("/v1/session/sign_out", service.EndpointSignOut)
	router.Get("/v1/session/permissions", withMiddlewares(service.EndpointGetSessionGrants, service.MiddlewareVerifySession))
	router.Post("/v1/session/navigation", withMiddlewares(service.EndpointEvaluateNavigation, service.MiddlewareVerifySession))

	// Register the permission catalog endpoint
	router.Get("/v1/permissions", service.EndpointGetPermissionCatalog)

	// Register the customer controller endpoints
	router.Get("/v1/customers", withMiddlewares(service.EndpointGetCustomers, service.MiddlewareVerifySession, service.MiddlewareCheckAdmin))
	router.Post("/v1/customers", withMiddlewares(service.EndpointCreateCustomer, service.MiddlewareVerifySession, service.MiddlewareCheckAdmin))
	router.Get("/v1/customers/{id}", withMiddlewares(service.EndpointGetCustomer, service.MiddlewareVerifySession, service.MiddlewareCheckAdmin))
	router.Delete("/v1/customers/{id}", withMiddlewares(service.EndpointDeleteCustomer, service.MiddlewareVerifySession, service.MiddlewareCheckAdmin))
	router.Get("/v1/customers/{id}/permissions", withMiddlewares(service.EndpointGetCustomerGrants, service.MiddlewareVerifySession, service.MiddlewareCheckAdmin))
	router.Put("/v1/customers/{id}/permissions", withMiddlewares(service.EndpointReplaceCustomerGrants, service.MiddlewareVerifySession, service.MiddlewareCheckAdmin))

	// Start up the server
	server := &http.Server{
		Addr:    service.Config.PortalAPIListenAddress,
		Handler: router,
	}
	service.server = server
	return server.ListenAndServe()
}

// Shutdown shuts down the portal API
func (service *Service) Shutdown() {
	if service.server != nil {
		service.server.Close()
		service.server = nil
	}
	if service.grantContexts != nil {
		service.grantContexts.Close()
		service.grantContexts = nil
	}
}

// grantContext provides the grant context of the given session, loading the
// grant set out of the storage driver on a cache miss. Sessions that cannot
// carry grants (administrators, customers without a linked customer record)
// get an empty context, so resolution degrades to denial instead of failing.
func (service *Service) grantContext(ctx context.Context, ses *session.Session) (*permission.Context, error) {
	if ses.Role != session.RoleCustomer || ses.CustomerID == "" {
		return permission.NewContext(nil), nil
	}
	customerID, err := uuid.Parse(ses.CustomerID)
	if err != nil {
		return permission.NewContext(nil), nil
	}

	// The cache is keyed by the canonical UUID representation, not the raw
	// claim value, so differently formatted claims hit the same entry.
	key := customerID.String()
	if cached, ok := service.grantContexts.Lookup(key); ok {
		return cached, nil
	}

	grants, err := service.Storage.Grants().GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	grantCtx := permission.NewContext(grants)
	service.grantContexts.Set(key, grantCtx)
	return grantCtx, nil
}

func withMiddlewares(end http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	final := end
	for i := len(middlewares); i > 0; i-- {
		final = middlewares[i-1](final)
	}
	return final
}
