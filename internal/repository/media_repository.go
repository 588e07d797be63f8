package repository

import (
	"context"
	"database/sql"

	"github.com/bizpeer/cdg-beauty/internal/model"
)

// MediaRepo encapsulates all queries against the `media_assets` table.
type MediaRepo struct{ DB *sql.DB }

func NewMediaRepo(db *sql.DB) *MediaRepo { return &MediaRepo{DB: db} }

const mediaColumns = "id, title, sub_title, type, file_path, thumbnail_path, order_index"

// List returns all media assets ordered by order_index. Colliding indices
// fall back to insertion order so the sort stays stable.
func (r *MediaRepo) List(ctx context.Context) ([]model.MediaAsset, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+mediaColumns+" FROM media_assets ORDER BY order_index, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MediaAsset
	for rows.Next() {
		var m model.MediaAsset
		if err := rows.Scan(&m.ID, &m.Title, &m.SubTitle, &m.Type, &m.FilePath, &m.ThumbnailPath, &m.OrderIndex); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Create inserts a media asset and fills in the generated ID.
func (r *MediaRepo) Create(ctx context.Context, m *model.MediaAsset) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO media_assets (title, sub_title, type, file_path, thumbnail_path, order_index) VALUES (?,?,?,?,?,?)",
		m.Title, m.SubTitle, m.Type, m.FilePath, m.ThumbnailPath, m.OrderIndex)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// Update overwrites every editable field of an existing asset.
func (r *MediaRepo) Update(ctx context.Context, m *model.MediaAsset) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE media_assets SET title=?, sub_title=?, type=?, file_path=?, thumbnail_path=?, order_index=? WHERE id=?",
		m.Title, m.SubTitle, m.Type, m.FilePath, m.ThumbnailPath, m.OrderIndex, m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.DB.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM media_assets WHERE id=?)", m.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

// Delete hard-deletes an asset; deleting a missing id is a no-op.
func (r *MediaRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM media_assets WHERE id=?", id)
	return err
}
