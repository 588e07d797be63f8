package model

import "time"

// Admin roles. Exactly one admin holds RoleMain per deployment; it is seeded
// at startup and cannot be created or deleted through the API.
const (
	RoleMain = "main"
	RoleSub  = "sub"
)

// Admin represents a dashboard account as stored in the `admins` table.
// PasswordHash is never serialized; handlers build their own response types.
//
// Fields:
//
//	ID                – primary key identifier.
//	Email             – unique, lowercased email address.
//	PasswordHash      – bcrypt hashed password.
//	Role              – "main" or "sub".
//	ReceivesInquiries – whether this account is the active inquiry receiver.
//	CreatedAt         – timestamp of creation.
type Admin struct {
	ID                uint64    `json:"id"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Role              string    `json:"role"`
	ReceivesInquiries bool      `json:"receives_inquiries"`
	CreatedAt         time.Time `json:"created_at"`
}
