package domain

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleOwner    Role = "owner"
	RoleTraveler Role = "traveler"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleOwner:
		return RoleOwner, nil
	case RoleTraveler:
		return RoleTraveler, nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Actor returns the identity a token issued for u carries.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

type CreateUserInput struct {
	Name  string `validate:"required,max=200"`
	Email string `validate:"required,email,max=320"`
	Role  Role   `validate:"required,oneof=owner traveler"`
}

// Actor is the authenticated caller of a request, passed explicitly into every operation.
type Actor struct {
	ID   int64
	Role Role
}
