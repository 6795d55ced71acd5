package services

import (
	"fleet-console/internal/domain"
	"fleet-console/internal/ports"
)

// SettingsScreen manages console users and their permissions.
type SettingsScreen struct {
	*CRUDScreen[domain.User, domain.UserFilter]
}

func NewSettingsScreen(api ports.Resource[domain.User], journal ports.Journal) *SettingsScreen {
	s := newCRUDScreen[domain.User, domain.UserFilter]("settings", "users", api, journal, Messages{
		Fetch:   "Error fetching users",
		Add:     "Error adding user",
		Update:  "Error updating user",
		Delete:  "Error deleting user",
		Added:   "User added successfully",
		Updated: "User updated successfully",
		Deleted: "User deleted successfully",
	})
	s.describe = func(u domain.User) string { return u.Name }
	return &SettingsScreen{CRUDScreen: s}
}
