package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/beautygo/beautygo-api/pkg/auth"
)

// ListFilter narrows admin user listings. Nil fields mean "no filter".
type ListFilter struct {
	Role     *auth.Role
	Approved *bool
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// FindByID retrieves a user by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindBookableProfessional retrieves the user only when they are an
	// approved professional (booking-creation check).
	FindBookableProfessional(ctx context.Context, id uuid.UUID) (*User, error)

	// List retrieves users matching the filter with pagination (admin).
	List(ctx context.Context, filter ListFilter, page, limit int) ([]*User, int64, error)

	// Count returns the number of users matching the filter (admin stats).
	Count(ctx context.Context, filter ListFilter) (int64, error)

	// Save persists a new user.
	Save(ctx context.Context, user *User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *User) error
}
