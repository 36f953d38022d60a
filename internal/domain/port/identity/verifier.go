package identity

import "context"

// Identity is the externally-authenticated principal attached to a request.
// Subject is the identity provider's stable user id; Email may be empty.
type Identity struct {
	Subject string
	Email   string
}

// Verifier validates a bearer token against the identity provider.
type Verifier interface {
	// Verify returns the identity encoded in the token.
	//
	// Possible errors:
	// - ErrUnauthenticated: token missing, malformed, expired or rejected
	//   by the provider
	Verify(ctx context.Context, token string) (*Identity, error)
}
