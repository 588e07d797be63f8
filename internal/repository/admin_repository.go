package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/bizpeer/cdg-beauty/internal/model"
	"github.com/bizpeer/cdg-beauty/internal/utils"
)

// AdminRepo encapsulates all queries against the `admins` table.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

const adminColumns = "id, email, password_hash, role, receives_inquiries, created_at"

func scanAdmin(row *sql.Row) (model.Admin, error) {
	var a model.Admin
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.ReceivesInquiries, &a.CreatedAt)
	return a, err
}

// GetByEmail fetches an admin by normalized email.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (model.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	a, err := scanAdmin(r.DB.QueryRowContext(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE email=? LIMIT 1", email))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Admin{}, ErrNotFound
	}
	return a, err
}

// ListSubAdmins returns all role=sub accounts ordered by creation time.
func (r *AdminRepo) ListSubAdmins(ctx context.Context) ([]model.Admin, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE role=? ORDER BY created_at", model.RoleSub)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Admin
	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.ReceivesInquiries, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Create inserts a sub-admin and returns its ID. The password is hashed
// here so plaintext never reaches the database layer boundary.
func (r *AdminRepo) Create(ctx context.Context, email, password string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO admins (email, password_hash, role, receives_inquiries) VALUES (?,?,?,FALSE)",
		email, hash, model.RoleSub)
	if err != nil {
		// 1062 = MySQL duplicate key
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Delete hard-deletes an admin by id. Returns ErrNotFound when no row is
// affected.
func (r *AdminRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM admins WHERE id=? AND role=?", id, model.RoleSub)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetInquiryReceiver flips the receives_inquiries flag in a single UPDATE so
// exactly one admin ends up flagged no matter how calls interleave. The
// target is checked first so an unknown email yields ErrNotFound instead of
// silently clearing every flag.
func (r *AdminRepo) SetInquiryReceiver(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := r.GetByEmail(ctx, email); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx,
		"UPDATE admins SET receives_inquiries = (email = ?)", email)
	return err
}

// GetInquiryReceiver returns the flagged admin, falling back to the main
// admin when nobody is flagged.
func (r *AdminRepo) GetInquiryReceiver(ctx context.Context) (model.Admin, error) {
	a, err := scanAdmin(r.DB.QueryRowContext(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE receives_inquiries=TRUE LIMIT 1"))
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Admin{}, err
	}
	a, err = scanAdmin(r.DB.QueryRowContext(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE role=? LIMIT 1", model.RoleMain))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Admin{}, ErrNotFound
	}
	return a, err
}

// EnsureMainAdmin seeds the main admin account on first run. INSERT IGNORE
// keeps the call idempotent across restarts and concurrent instances.
func (r *AdminRepo) EnsureMainAdmin(ctx context.Context, email, password string, cost int) error {
	email = strings.ToLower(strings.TrimSpace(email))
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM admins WHERE role=?)", model.RoleMain).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"INSERT IGNORE INTO admins (email, password_hash, role, receives_inquiries) VALUES (?,?,?,FALSE)",
		email, hash, model.RoleMain)
	return err
}
