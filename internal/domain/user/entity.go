package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingName  = errors.New("user name is required")
	ErrMissingEmail = errors.New("user email is required")
)

type User struct {
	id                 uuid.UUID
	name               string
	email              string
	preferredPlatforms []string
	preferredCategories []string
}

func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrMissingEmail
	}
	return &User{
		id:    uuid.New(),
		name:  name,
		email: email,
	}, nil
}

func (u *User) ID() uuid.UUID                 { return u.id }
func (u *User) Name() string                  { return u.name }
func (u *User) Email() string                 { return u.email }
func (u *User) PreferredPlatforms() []string  { return u.preferredPlatforms }
func (u *User) PreferredCategories() []string { return u.preferredCategories }
