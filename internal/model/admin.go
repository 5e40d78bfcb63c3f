package model

import "time"

// Admin represents a row in the `admins` table. Admins and users are
// distinct principal kinds; an admin token never satisfies a user-gated
// route and vice versa.
type Admin struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
