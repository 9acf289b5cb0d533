// Package model defines the data structures used throughout the application.
package model

// User represents a registered account.
//
// CreatedAt is stored as an RFC 3339 string rather than time.Time: the API
// only ever passes the timestamp through to JSON, never does arithmetic on
// it, and the string form round-trips without timezone surprises.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"` // always stored trimmed and lower-cased
	CreatedAt string `json:"createdAt"`
}

// CreateUserRequest is the validated, normalized payload for creating a user.
type CreateUserRequest struct {
	Name  string
	Email string
}

// UpdateUserRequest carries only the fields present in the update payload.
// Nil means "leave unchanged".
type UpdateUserRequest struct {
	Name  *string
	Email *string
}
