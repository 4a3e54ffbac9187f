// Package identity abstracts the external identity collaborator. Token
// issuance and credential storage live outside this service; all it
// needs back is a verified principal per request.
package identity

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// Principal is the verified caller of a request.
type Principal struct {
	EmployeeID snowflake.ID
	Role       string
}

// Verifier resolves a bearer token to a principal.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

var (
	ErrInvalidToken = errors.New("invalid_token")
)
