package models

import "strings"

// User represents a registered account.
//
// The identity fields below are never modified by a data reset.
type User struct {
	// Username is the unique login name and the partition key of every collection.
	Username string

	// Email is the user's email address.
	Email string

	// DisplayName is the name shown in the planner header.
	DisplayName string

	// PasswordHash is the bcrypt hash of the user's password.
	// Rows written by older tooling may still hold plaintext; see auth.IsHashed.
	PasswordHash string
}

// NewUser creates a user with a normalized username.
func NewUser(username, email, displayName, passwordHash string) *User {
	return &User{
		Username:     NormalizeUsername(username),
		Email:        strings.TrimSpace(email),
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: passwordHash,
	}
}

// NormalizeUsername trims surrounding whitespace. Usernames are otherwise
// compared exactly.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
