package models

import "time"

// User roles.
const (
	RoleClient       = "client"
	RolePhotographer = "photographer"
	RoleAdmin        = "admin"
)

// User represents a platform identity record.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string    `bson:"role" json:"role"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	IsVerified   bool      `bson:"isVerified" json:"isVerified"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	LastLoginAt  time.Time `bson:"lastLoginAt,omitempty" json:"lastLoginAt"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserRegistration is the payload accepted at sign-up.
type UserRegistration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,oneof=client photographer"`
}
