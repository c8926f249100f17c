package user

import (
	"fmt"
	"strings"
	"time"

	"campusfix/internal/shared/authorization"
)

// User is a campus account. Roles are fixed at three: reporter, technician,
// admin. There is no role management beyond assignment at creation.
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         authorization.UserRole
	createdAt    time.Time
}

func NewUser(name, email, passwordHash string, role authorization.UserRole) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructUser(
	id uint,
	name, email, passwordHash string,
	role authorization.UserRole,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) IsTechnician() bool {
	return u.role.IsTechnician()
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}
