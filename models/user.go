package models

import (
	"strings"
	"time"
)

// User represents a registered account of the theatre.
// It contains identity attributes and the stored credential hash.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the storage layer on registration.
	UserID int64 `json:"user_id"`

	// Username is the unique login identifier of the user.
	Username string `json:"username"`

	// PasswordHash stores the encoded salted KDF output of the password.
	// It is never serialized to JSON and never holds plaintext.
	PasswordHash string `json:"-"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// FirstName and LastName together form the display name.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Phone is the contact phone number. Required on registration.
	Phone string `json:"phone"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns the name shown to the user after login.
// Falls back to Username when both name parts are empty.
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}

	return name
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
