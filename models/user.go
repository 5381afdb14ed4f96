package models

import "time"

// RoleAdmin is the role value that unlocks the admin-gated endpoints.
const RoleAdmin = "admin"

// User is a patient or staff account. Only the role field matters to the
// booking core (admin gating); everything else is account plumbing.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Role         string    `bson:"role,omitempty" json:"role,omitempty"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
