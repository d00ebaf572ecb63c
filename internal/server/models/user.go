// Package models contains the persistent domain types of the server.
package models

import "time"

// Roles assignable to a user account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account row. Password holds the serialized credential tuple
// (algo:iterations:salt:hash), never the plaintext.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
}
