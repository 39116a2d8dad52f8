package portal

import (
	"math"
	"net/http"

	"github.com/apptime/portal-server/internal/api/schema"
	"github.com/apptime/portal-server/internal/api/validation"
	"github.com/apptime/portal-server/internal/customer"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var errCustomerFieldMissing = func(name string) *schema.Error {
	return &schema.Error{
		Type:    "customers.field.missing",
		Message: "A required customer field is missing.",
		Details: map[string]interface{}{
			"field": name,
		},
	}
}

// EndpointGetCustomers handles the 'GET /v1/customers?offset={number?:0}&limit={number?:10}' endpoint
func (service *Service) EndpointGetCustomers(writer http.ResponseWriter, request *http.Request) {
	var validationErrs []*schema.Error

	offset, validationErr := validation.QueryNumber(request, "offset", false, 0, 0, math.MaxInt64)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	limit, validationErr := validation.QueryNumber(request, "limit", false, 10, 1, 1000)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	customers, n, err := service.Storage.Customers().Get(request.Context(), uint64(offset), uint64(limit))
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	service.writer.WriteJSON(writer, schema.BuildPaginatedResponse(uint64(offset), uint64(limit), n, customers))
}

// EndpointGetCustomer handles the 'GET /v1/customers/{id}' endpoint
func (service *Service) EndpointGetCustomer(writer http.ResponseWriter, request *http.Request) {
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

	service.writer.WriteJSON(writer, obj)
}

type endpointCreateCustomerRequestPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// EndpointCreateCustomer handles the 'POST /v1/customers' endpoint
func (service *Service) EndpointCreateCustomer(writer http.ResponseWriter, request *http.Request) {
	payload, validationErrs, err := validation.UnmarshalBody[endpointCreateCustomerRequestPayload](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if payload != nil {
		if payload.FirstName == "" {
			validationErrs = append(validationErrs, errCustomerFieldMissing("first_name"))
		}
		if payload.LastName == "" {
			validationErrs = append(validationErrs, errCustomerFieldMissing("last_name"))
		}
		if payload.Email == "" {
			validationErrs = append(validationErrs, errCustomerFieldMissing("email"))
		}
	}
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	obj, err := service.Storage.Customers().Create(request.Context(), &customer.Create{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
	})
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	service.writer.WriteJSONCode(writer, http.StatusCreated, obj)
}

// EndpointDeleteCustomer handles the 'DELETE /v1/customers/{id}' endpoint.
// The customer's permission grants and any live grant context are dropped as well.
func (service *Service) EndpointDeleteCustomer(writer http.ResponseWriter, request *http.Request) {
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

	if err := service.Storage.Customers().Delete(request.Context(), obj.ID); err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if err := service.Storage.Grants().DeleteForCustomer(request.Context(), obj.ID); err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	if cached, ok := service.grantContexts.Lookup(id.String()); ok {
		cached.Clear()
	}
	service.grantContexts.Unset(id.String())

	writer.WriteHeader(http.StatusNoContent)
}
