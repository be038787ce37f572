package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	// FindByLogin returns users whose username or email equals login,
	// ignoring case, oldest first
	FindByLogin(ctx context.Context, login string) ([]User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Save(ctx context.Context, user *User) error
}

// ResolveLogin picks the account a login string refers to. With several
// matches the oldest account whose email equals the login exactly wins.
func ResolveLogin(candidates []User, login string) *User {
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return &candidates[0]
	}
	for i := range candidates {
		if candidates[i].Email == login {
			return &candidates[i]
		}
	}
	return nil
}
