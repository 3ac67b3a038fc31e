// Package service defines interfaces for domain services.
package service

// ResetTokenService issues the short-lived signed tokens mailed in password
// reset links. The token binds the email so the consume step can verify the
// pair without server-side state.
type ResetTokenService interface {
	// Generate creates a reset token for the given account email.
	Generate(email string) (string, error)

	// Verify checks the token signature and expiry and confirms it was issued
	// for the given email.
	Verify(token, email string) error
}
