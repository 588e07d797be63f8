// Package store defines the storage-adapter interfaces the HTTP layer
// depends on. The original deployment shipped three parallel backends
// (Firestore, MongoDB, Supabase) that re-implemented the same CRUD surface;
// here that surface is captured once as interfaces and implemented by the
// MySQL repositories in internal/repository. Handlers accept these
// interfaces so tests can substitute in-memory fakes.
package store

import (
	"context"

	"github.com/bizpeer/cdg-beauty/internal/model"
)

// AdminStore persists dashboard accounts and the inquiry-receiver flag.
type AdminStore interface {
	// GetByEmail returns the admin with the given (normalized) email or
	// repository.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (model.Admin, error)
	// ListSubAdmins returns all role=sub accounts.
	ListSubAdmins(ctx context.Context) ([]model.Admin, error)
	// Create inserts a sub-admin, hashing the password with the given cost.
	// Returns repository.ErrEmailExists on duplicates.
	Create(ctx context.Context, email, password string, cost int) (uint64, error)
	// Delete removes an admin by id. Missing rows yield repository.ErrNotFound.
	Delete(ctx context.Context, id uint64) error
	// SetInquiryReceiver makes the named admin the single active receiver.
	// The flag flip is one statement so no interleaving can leave two
	// receivers set.
	SetInquiryReceiver(ctx context.Context, email string) error
	// GetInquiryReceiver returns the active receiver, falling back to the
	// main admin when no flag is set.
	GetInquiryReceiver(ctx context.Context) (model.Admin, error)
	// EnsureMainAdmin seeds the main admin when absent. Idempotent.
	EnsureMainAdmin(ctx context.Context, email, password string, cost int) error
}

// InquiryStore persists contact-form submissions.
type InquiryStore interface {
	Create(ctx context.Context, inq *model.Inquiry) error
	// List returns all inquiries, newest first.
	List(ctx context.Context) ([]model.Inquiry, error)
	Delete(ctx context.Context, id uint64) error
}

// ProductStore reads and updates the seeded product catalog.
type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id uint64) (model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	// SeedDefaults loads the bundled catalog when the table is empty.
	SeedDefaults(ctx context.Context, products []model.Product) error
}

// MediaStore manages media lab entries, ordered by order_index.
type MediaStore interface {
	List(ctx context.Context) ([]model.MediaAsset, error)
	Create(ctx context.Context, m *model.MediaAsset) error
	Update(ctx context.Context, m *model.MediaAsset) error
	Delete(ctx context.Context, id uint64) error
}

// ShowcaseStore manages collection showcase slides, ordered by order_index.
type ShowcaseStore interface {
	List(ctx context.Context) ([]model.ShowcaseSlide, error)
	Create(ctx context.Context, s *model.ShowcaseSlide) error
	Update(ctx context.Context, s *model.ShowcaseSlide) error
	Delete(ctx context.Context, id uint64) error
	// SeedDefaults loads the bundled slides when the table is empty.
	SeedDefaults(ctx context.Context, slides []model.ShowcaseSlide) error
}

// ContactStore reads and writes the singleton contact block.
type ContactStore interface {
	// Get returns the contact row or repository.ErrNotFound when none exists.
	Get(ctx context.Context) (model.ContactInfo, error)
	// Save updates the singleton row, creating it when absent.
	Save(ctx context.Context, c *model.ContactInfo) error
}
