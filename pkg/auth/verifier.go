// Package auth verifies admin bearer tokens.
package auth

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrInvalidToken token is malformed, expired or rejected by the issuer
	ErrInvalidToken = errors.New("invalid token")
	// ErrNotAdmin token is valid but does not belong to an admin account
	ErrNotAdmin = errors.New("not an admin")
)

// Admin is the verified identity behind a token
type Admin struct {
	MemID  string `json:"mem_id"`
	MemIdx int64  `json:"mem_idx"`
}

// Verifier confirms a token belongs to an admin account.
// ErrInvalidToken and ErrNotAdmin are rejections; any other error is a verifier failure.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Admin, error)
}

// ExtractToken returns the token of an Authorization header.
// A header without the Bearer scheme is used as is.
func ExtractToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return strings.TrimSpace(header)
}

// IsRejection reports whether err means the token was refused rather than unverifiable
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrNotAdmin)
}
