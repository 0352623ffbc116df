// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/slalom/capabilities/internal/validation"
)

// ConsultantRequest carries the consultant email for register and unregister
// operations. The email may arrive as a query parameter or in the JSON body;
// the query parameter wins when both are present.
type ConsultantRequest struct {
	Email string `json:"email"`
}

// Validate checks if the consultant request is valid.
func (r *ConsultantRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
