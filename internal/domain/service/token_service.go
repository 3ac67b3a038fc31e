// Package service defines interfaces for domain services.
package service

import "time"

// TokenService issues and hashes the opaque bearer tokens used for API
// authentication. Raw tokens are handed to the client once; only their
// hashes are persisted, so a token can be revoked by deleting its row.
type TokenService interface {
	// Generate returns a fresh raw bearer token and its storage hash.
	Generate() (raw string, hash string, err error)

	// HashToken recomputes the storage hash for a presented raw token.
	HashToken(raw string) string

	// TTL returns how long an issued token stays valid.
	TTL() time.Duration
}
