package user

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/beautygo/beautygo-api/pkg/auth"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

// User is a marketplace account: a client, a professional or an admin.
// Professionals start unapproved and cannot list services or receive
// bookings until an admin approves them.
type User struct {
	id           uuid.UUID
	name         string
	email        string
	phone        string
	passwordHash string
	role         auth.Role
	approved     bool
	bio          string
	city         string
	state        string
	version      int64
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a user account. Clients and admins are approved
// immediately; professionals await admin approval.
func NewUser(name, email, phone, passwordHash string, role auth.Role, bio, city, state string) (*User, error) {
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	if passwordHash == "" {
		return nil, domain.NewValidationError("password is required")
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("invalid role")
	}

	now := time.Now().UTC()
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        strings.ToLower(email),
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		approved:     role != auth.RoleProfessional,
		bio:          bio,
		city:         city,
		state:        state,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a User from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	name, email, phone, passwordHash string,
	role auth.Role,
	approved bool,
	bio, city, state string,
	version int64,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		approved:     approved,
		bio:          bio,
		city:         city,
		state:        state,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// --- Getters ---

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() string         { return u.email }
func (u *User) Phone() string         { return u.phone }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() auth.Role       { return u.role }
func (u *User) IsApproved() bool      { return u.approved }
func (u *User) Bio() string           { return u.bio }
func (u *User) City() string          { return u.city }
func (u *User) State() string         { return u.state }
func (u *User) Version() int64        { return u.version }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

// IsBookableProfessional reports whether the user can receive bookings.
func (u *User) IsBookableProfessional() bool {
	return u.role == auth.RoleProfessional && u.approved
}

// --- Behavior ---

// SetApproved flips the approval flag. Only professionals carry it.
func (u *User) SetApproved(approved bool) error {
	if u.role != auth.RoleProfessional {
		return domain.NewValidationError("only professionals require approval")
	}
	u.approved = approved
	u.version++
	u.updatedAt = time.Now().UTC()
	return nil
}

// UpdateProfile applies partial profile updates.
func (u *User) UpdateProfile(name, phone, bio, city, state string) {
	if name != "" {
		u.name = name
	}
	if phone != "" {
		u.phone = phone
	}
	if bio != "" {
		u.bio = bio
	}
	if city != "" {
		u.city = city
	}
	if state != "" {
		u.state = state
	}
	u.version++
	u.updatedAt = time.Now().UTC()
}
