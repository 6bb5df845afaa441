package dto

import (
	"time"

	tokenDomain "github.com/allisson/docvault/internal/token/domain"
)

// IssueCapabilityTokenResponse carries a freshly minted capability token.
type IssueCapabilityTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewIssueCapabilityTokenResponse converts an issued token to its response representation.
func NewIssueCapabilityTokenResponse(issued *tokenDomain.IssuedToken) IssueCapabilityTokenResponse {
	return IssueCapabilityTokenResponse{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
	}
}
