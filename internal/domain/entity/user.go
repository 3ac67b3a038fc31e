// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. It is created explicitly through
// registration, or implicitly (find-or-create by email) during a guest
// checkout; in the latter case PasswordHash holds a random secret the
// customer can only replace through the reset flow.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	LastName     string    // Family name ("nom" upstream).
	FirstName    string    // Given name ("prénom" upstream).
	Email        string    // Unique login identifier and contact address.
	Phone        string    // Unique contact phone number.
	PasswordHash string    // bcrypt hash of the password. Never serialized to clients.
	Role         Role      // client or admin.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// FullName renders the display name used in mails and admin tables.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// AccessToken is one issued bearer credential. Only the SHA-256 hash of the
// raw token is stored; logout deletes every row for the user, which revokes
// all outstanding tokens at once.
type AccessToken struct {
	ID        uuid.UUID // The unique ID for this token record.
	UserID    uuid.UUID // The user this token authenticates.
	TokenHash string    // SHA-256 hash of the raw bearer token.
	ExpiresAt time.Time // The exact time when this token becomes invalid.
	CreatedAt time.Time // Timestamp of when this token was issued (login time).
}
