package entity

import "time"

// User is an account row on its home shard. HomeShard records which
// shard the row canonically lives on; it is fixed at registration and
// never changes afterwards.
type User struct {
	ID           uint
	Username     string
	PasswordHash string
	HomeShard    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
