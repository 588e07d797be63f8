package repository

import (
	"context"
	"database/sql"

	"github.com/bizpeer/cdg-beauty/internal/model"
)

// InquiryRepo encapsulates all queries against the `inquiries` table.
type InquiryRepo struct{ DB *sql.DB }

func NewInquiryRepo(db *sql.DB) *InquiryRepo { return &InquiryRepo{DB: db} }

// Create inserts an inquiry with a server-assigned timestamp and fills in
// the generated ID and CreatedAt so the handler can echo them back.
func (r *InquiryRepo) Create(ctx context.Context, inq *model.Inquiry) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO inquiries (name, email, country, message) VALUES (?,?,?,?)",
		inq.Name, inq.Email, inq.Country, inq.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	inq.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM inquiries WHERE id=?", inq.ID).Scan(&inq.CreatedAt)
}

// List returns all inquiries, newest first.
func (r *InquiryRepo) List(ctx context.Context) ([]model.Inquiry, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, email, country, message, created_at FROM inquiries ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Inquiry
	for rows.Next() {
		var q model.Inquiry
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Country, &q.Message, &q.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// Delete hard-deletes an inquiry. Deleting a missing id is not an error so
// the operation stays idempotent.
func (r *InquiryRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM inquiries WHERE id=?", id)
	return err
}
