package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("not found")

	// ErrCategoryExists is returned when a new category's derived slug
	// collides with an existing category id.
	ErrCategoryExists = errors.New("category already exists")

	// ErrAdminExists is returned by the bootstrap signup guard when an
	// administrative user already exists.
	ErrAdminExists = errors.New("admin user already exists")

	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
