package portal

import (
	"net/http"

	"github.com/apptime/portal-server/internal/api/schema"
	"github.com/apptime/portal-server/internal/api/validation"
	"github.com/apptime/portal-server/internal/permission"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var errInvalidGrantStatus = func(name, status string) *schema.Error {
	return &schema.Error{
		Type:    "permissions.grant.invalidStatus",
		Message: "A grant carries an unknown status.",
		Details: map[string]interface{}{
			"name":   name,
			"status": status,
		},
	}
}

// EndpointGetPermissionCatalog handles the 'GET /v1/permissions' endpoint
func (service *Service) EndpointGetPermissionCatalog(writer http.ResponseWriter, _ *http.Request) {
	service.writer.WriteJSON(writer, permission.Catalog())
}

// EndpointGetCustomerGrants handles the 'GET /v1/customers/{id}/permissions' endpoint
func (service *Service) EndpointGetCustomerGrants(writer http.ResponseWriter, request *http.Request) {
	id, err := uuid.Parse(chi.URLParam(request, "id"))
	if err != nil {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return
	}

	obj, err := service.Storage.Customers().GetByID(request.Context(), id)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if obj == nil {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return
	}

	grants, err := service.Storage.Grants().GetByCustomerID(request.Context(), id)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	service.writer.WriteJSON(writer, grants)
}

type endpointReplaceCustomerGrantsRequestPayload struct {
	Grants []struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	} `json:"grants"`
}

// EndpointReplaceCustomerGrants handles the 'PUT /v1/customers/{id}/permissions' endpoint.
// The posted grant set replaces the stored one as a whole; a live grant
// context of the affected customer is swapped in the same step so ongoing
// sessions observe either the old or the new complete set.
func (service *Service) EndpointReplaceCustomerGrants(writer http.ResponseWriter, request *http.Request) {
	id, err := uuid.Parse(chi.URLParam(request, "id"))
	if err != nil {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return
	}

	obj, err := service.Storage.Customers().GetByID(request.Context(), id)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if obj == nil {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return
	}

	payload, validationErrs, err := validation.UnmarshalBody[endpointReplaceCustomerGrantsRequestPayload](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	replacements := make([]permission.Replace, 0, len(payload.Grants))
	for _, grant := range payload.Grants {
		status := permission.GrantStatus(grant.Status)
		if status == "" {
			status = permission.GrantStatusActive
		}
		if status != permission.GrantStatusActive && status != permission.GrantStatusInactive {
			validationErrs = append(validationErrs, errInvalidGrantStatus(grant.Name, grant.Status))
			continue
		}
		replacements = append(replacements, permission.Replace{
			Name:   grant.Name,
			Status: status,
		})
	}
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	grants, err := service.Storage.Grants().ReplaceForCustomer(request.Context(), id, replacements)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	// Swap the live grant context of the affected customer, if any
	if cached, ok := service.grantContexts.Lookup(id.String()); ok {
		cached.Replace(grants)
	}

	service.writer.WriteJSON(writer, grants)
}
