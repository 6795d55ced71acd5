package domain

import (
	"slices"
	"strings"
)

const (
	PermissionRead  = "read"
	PermissionWrite = "write"
	PermissionAdmin = "admin"
)

var Permissions = []string{PermissionRead, PermissionWrite, PermissionAdmin}

// User is a console operator managed on the settings screen.
type User struct {
	ID          int      `json:"id,omitempty"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

func (u User) Key() int { return u.ID }

func (u User) WithKey(id int) User {
	u.ID = id
	return u
}

func (u User) Validate() error {
	if err := required("name", u.Name); err != nil {
		return err
	}
	if len(u.Permissions) == 0 {
		return &ValidationError{Field: "permissions"}
	}
	return nil
}

func (u User) Has(permission string) bool {
	return slices.Contains(u.Permissions, permission)
}

// UserFilter narrows the user list.
type UserFilter struct {
	Search     string
	Permission string
}

func (f UserFilter) Match(u User) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Permission != "" && !u.Has(f.Permission) {
		return false
	}
	return true
}
