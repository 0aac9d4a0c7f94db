package domain

import "time"

// User represents an account. Passwords are stored and compared in
// plaintext; this mirrors the legacy behavior and is a documented weakness,
// not something to rely on.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
