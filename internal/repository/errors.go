// Package repository implements the store interfaces against MySQL. This
// file defines sentinel errors shared by the repositories so handlers can
// map failures onto HTTP statuses without inspecting driver error strings.
package repository

import "errors"

// ErrNotFound is returned when a lookup, update or delete matches no row.
// Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when an admin insert collides with an existing
// email. Handlers translate it into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
