package database

import (
	"context"
)

// Database defines the methods for database operations. Lookup methods
// return (nil, nil) when the requested row does not exist.
type Database interface {
	// Close closes the database connection.
	Close() error

	// Transaction runs fn inside a transaction. Nested calls reuse the
	// transaction already carried by the context.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	// GetUserByExternalID returns the user synced from the given
	// identity-provider account.
	GetUserByExternalID(ctx context.Context, externalID string) (*User, error)

	// GetUserByID returns a user by local id.
	GetUserByID(ctx context.Context, id uint) (*User, error)

	// CreateUser creates a new user row.
	CreateUser(ctx context.Context, user *User) error

	// UpdateUser persists changes to an existing user row.
	UpdateUser(ctx context.Context, user *User) error

	// DeleteUser removes a user row.
	DeleteUser(ctx context.Context, id uint) error

	// ListUsers returns all users, newest first.
	ListUsers(ctx context.Context) ([]*User, error)

	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int64, error)

	// CountUsersByRole returns the number of users holding role.
	CountUsersByRole(ctx context.Context, role UserRole) (int64, error)

	// FirstUser returns the earliest-created user.
	FirstUser(ctx context.Context) (*User, error)

	// GetSettingsGeneral returns the singleton locale settings row.
	GetSettingsGeneral(ctx context.Context) (*SettingsGeneral, error)

	// SaveSettingsGeneral creates the singleton row or updates it in place.
	SaveSettingsGeneral(ctx context.Context, s *SettingsGeneral) error

	// GetSettingsAppearance returns the singleton appearance row.
	GetSettingsAppearance(ctx context.Context) (*SettingsAppearance, error)

	// SaveSettingsAppearance creates the singleton row or updates it in place.
	SaveSettingsAppearance(ctx context.Context, s *SettingsAppearance) error
}
