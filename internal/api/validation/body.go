package validation

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/apptime/portal-server/internal/api/schema"
)

var (
	errRequestBodyInvalidJSON = func(err string) *schema.Error {
		return &schema.Error{
			Type:    "validation.requestBody.invalidJSON",
			Message: "Request body is not a valid JSON input.",
			Details: map[string]interface{}{
				"error": err,
			},
		}
	}
	errRequestBodyParameterInvalidType = func(name, expectedType string) *schema.Error {
		return &schema.Error{
			Type:    "validation.requestBody.parameter.invalidType",
			Message: "A request body parameter could not be assigned to the required type.",
			Details: map[string]interface{}{
				"parameter":     name,
				"expected_type": expectedType,
			},
		}
	}
)

// UnmarshalBody parses and decodes a JSON request body.
// Decoding problems caused by the client surface as validation errors, I/O
// problems as the error return value.
func UnmarshalBody[T any](request *http.Request) (*T, []*schema.Error, error) {
	body, err := io.ReadAll(request.Body)
	if err != nil {
		return nil, nil, err
	}

	target := new(T)
	if err := json.Unmarshal(body, target); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
			return nil, []*schema.Error{errRequestBodyParameterInvalidType(typeErr.Field, typeErr.Type.String())}, nil
		}
		return nil, []*schema.Error{errRequestBodyInvalidJSON(err.Error())}, nil
	}

	return target, nil, nil
}
