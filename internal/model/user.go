package model

import "github.com/google/uuid"

// User is the authenticated identity. Usernames are unique and double as
// the handle for watchlist matching.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash []byte
}
