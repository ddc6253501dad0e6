package models

import "time"

// AdminUser represents an administrator account. Accounts are seeded
// out-of-band (see cmd/seed); there is no self-registration.
type AdminUser struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RoleAdmin is the only role in use today. Kept as a constant so the role
// middleware has something concrete to check against.
const RoleAdmin = "admin"
