package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/supporthub/supporthub/internal/shared/authorization"
)

var ErrUserNotFound = errors.New("user not found")

// User is the staff identity behind an agent, supervisor or admin. Credentials
// live with the external identity provider.
type User struct {
	id       string
	name     string
	email    string
	role     authorization.UserRole
	isActive bool
}

// NewUser creates an active user with a fresh UUID.
func NewUser(name, email string, role authorization.UserRole) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("user name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		id:       uuid.NewString(),
		name:     name,
		email:    strings.ToLower(strings.TrimSpace(email)),
		role:     role,
		isActive: true,
	}, nil
}

func ReconstructUser(id, name, email string, role authorization.UserRole, isActive bool) *User {
	return &User{id: id, name: name, email: email, role: role, isActive: isActive}
}

func (u *User) ID() string                   { return u.id }
func (u *User) Name() string                 { return u.name }
func (u *User) Email() string                { return u.email }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) IsActive() bool               { return u.isActive }

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	// FindByEmail returns (nil, nil) on miss.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
