package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// Envelope is the uniform success wrapper for API responses.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorEnvelope is the uniform failure wrapper for API responses.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

// EnvelopeTransformer wraps every response body in the {success, data}
// envelope clients expect. Errors produced by RegisterErrorHandler are
// wrapped as {success, error} instead.
func EnvelopeTransformer(_ huma.Context, _ string, v any) (any, error) {
	if apiErr, ok := v.(*APIError); ok {
		return &ErrorEnvelope{Success: false, Error: apiErr}, nil
	}
	return &Envelope{Success: true, Data: v}, nil
}
