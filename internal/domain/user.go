package domain

import (
	"context"
	"time"
)

// User is an account that can organize events. The ID is the account email.
// swagger:model User
type User struct {
	ID        string    `json:"user_id"`
	OrgName   string    `json:"org_name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser returns a new User with the given fields.
func NewUser(id, orgName, username string, createdAt time.Time) *User {
	return &User{
		ID:        id,
		OrgName:   orgName,
		Username:  username,
		CreatedAt: createdAt,
	}
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
}

// UserService defines user directory operations.
type UserService interface {
	CreateUser(ctx context.Context, id, orgName, username string) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
}
