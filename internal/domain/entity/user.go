package entity

import (
	"time"
)

// Author is the public profile attached to prompts and posts.
type Author struct {
	ID        string    `bson:"id" json:"id"`
	Username  string    `bson:"username" json:"username"`
	AvatarURL string    `bson:"avatar_url" json:"avatar_url"`
	IsPremium bool      `bson:"is_premium,omitempty" json:"is_premium,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Bio       string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Website   string    `bson:"website,omitempty" json:"website,omitempty"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// Admin is the operator account allowed into the admin panel.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	Role         UserRole
}
