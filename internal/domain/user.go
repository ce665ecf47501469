package domain

import (
	"context"
	"time"
)

// AdminUserID is the identity of the single administrator: the first
// account ever registered. There is no role table.
const AdminUserID int64 = 1

// User represents a registered user of the blog.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user is the designated administrator.
func (u *User) IsAdmin() bool {
	return u != nil && u.ID == AdminUserID
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
