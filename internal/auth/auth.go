package auth

import "time"

// Authenticator seals a session id into a bearer token and opens it again.
// The token carries no role or ownership data.
type Authenticator interface {
	GenerateToken(sessionID string, issuedAt, expiresAt time.Time) (string, error)
	ValidateToken(token string, now time.Time) (string, error)
}
