package model

import "time"

// Inquiry is a message submitted through the public contact form. Rows are
// immutable once created except for deletion by an admin.
type Inquiry struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Country   string    `json:"country"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
