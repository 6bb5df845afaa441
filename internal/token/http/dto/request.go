// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	tokenDomain "github.com/allisson/docvault/internal/token/domain"
	customValidation "github.com/allisson/docvault/internal/validation"
)

// IssueCapabilityTokenRequest contains the parameters for issuing a
// capability token for a document.
type IssueCapabilityTokenRequest struct {
	Purpose string `json:"purpose"`
}

// Validate checks if the issue request is valid.
func (r *IssueCapabilityTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Purpose,
			validation.Required,
			customValidation.NotBlank,
			validation.In(
				string(tokenDomain.PurposePreview),
				string(tokenDomain.PurposeDownload),
			),
		),
	)
}
