package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bizpeer/cdg-beauty/internal/model"
)

// ContactRepo manages the singleton `contact_info` row.
type ContactRepo struct{ DB *sql.DB }

func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{DB: db} }

// Get returns the contact row or ErrNotFound when none has been saved yet.
func (r *ContactRepo) Get(ctx context.Context) (model.ContactInfo, error) {
	var c model.ContactInfo
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, address, phone, email, updated_at FROM contact_info ORDER BY id LIMIT 1").
		Scan(&c.ID, &c.Address, &c.Phone, &c.Email, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ContactInfo{}, ErrNotFound
	}
	return c, err
}

// Save writes the singleton row with create-if-absent semantics and reloads
// it so the caller sees the server-assigned updated_at.
func (r *ContactRepo) Save(ctx context.Context, c *model.ContactInfo) error {
	existing, err := r.Get(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		res, err := r.DB.ExecContext(ctx,
			"INSERT INTO contact_info (address, phone, email) VALUES (?,?,?)",
			c.Address, c.Phone, c.Email)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		c.ID = uint64(id)
	case err != nil:
		return err
	default:
		if _, err := r.DB.ExecContext(ctx,
			"UPDATE contact_info SET address=?, phone=?, email=? WHERE id=?",
			c.Address, c.Phone, c.Email, existing.ID); err != nil {
			return err
		}
		c.ID = existing.ID
	}
	saved, err := r.Get(ctx)
	if err != nil {
		return err
	}
	*c = saved
	return nil
}
