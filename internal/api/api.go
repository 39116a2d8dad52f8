package api

import (
	"errors"
	"net/http"

	"github.com/apptime/portal-server/internal/api/portal"
	"github.com/apptime/portal-server/internal/config"
	"github.com/apptime/portal-server/internal/session"
	"github.com/apptime/portal-server/internal/storage"
)

// Service represents the portal API service
type Service struct {
	Config    *config.Config
	Storage   storage.Driver
	Authority *session.Authority
	portal    *portal.Service
}

// Startup starts up the portal API
func (service *Service) Startup(errs chan<- error) {
	portalService := &portal.Service{
		Config:    service.Config,
		Storage:   service.Storage,
		Authority: service.Authority,
	}
	service.portal = portalService
	go func() {
		if err := portalService.Startup(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
}

// Shutdown shuts down the portal API
func (service *Service) Shutdown() {
	if service.portal != nil {
		service.portal.Shutdown()
		service.portal = nil
	}
}
