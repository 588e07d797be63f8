package repository

import (
	"context"
	"database/sql"

	"github.com/bizpeer/cdg-beauty/internal/model"
)

// ShowcaseRepo encapsulates all queries against the `collection_showcase`
// table. The layout column is a validated enum; the handler rejects values
// outside standard/statement before they reach this layer.
type ShowcaseRepo struct{ DB *sql.DB }

func NewShowcaseRepo(db *sql.DB) *ShowcaseRepo { return &ShowcaseRepo{DB: db} }

const showcaseColumns = "id, title, subtitle, image_url, bg_color, layout, COALESCE(description,''), COALESCE(features,''), order_index"

// List returns all slides ordered by order_index with ties in insertion
// order.
func (r *ShowcaseRepo) List(ctx context.Context) ([]model.ShowcaseSlide, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+showcaseColumns+" FROM collection_showcase ORDER BY order_index, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ShowcaseSlide
	for rows.Next() {
		var s model.ShowcaseSlide
		if err := rows.Scan(&s.ID, &s.Title, &s.Subtitle, &s.ImageURL, &s.BgColor, &s.Layout, &s.Description, &s.Features, &s.OrderIndex); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts a slide and fills in the generated ID.
func (r *ShowcaseRepo) Create(ctx context.Context, s *model.ShowcaseSlide) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO collection_showcase (title, subtitle, image_url, bg_color, layout, description, features, order_index) VALUES (?,?,?,?,?,?,?,?)",
		s.Title, s.Subtitle, s.ImageURL, s.BgColor, s.Layout, s.Description, s.Features, s.OrderIndex)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// Update overwrites every editable field of an existing slide.
func (r *ShowcaseRepo) Update(ctx context.Context, s *model.ShowcaseSlide) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE collection_showcase SET title=?, subtitle=?, image_url=?, bg_color=?, layout=?, description=?, features=?, order_index=? WHERE id=?",
		s.Title, s.Subtitle, s.ImageURL, s.BgColor, s.Layout, s.Description, s.Features, s.OrderIndex, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.DB.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM collection_showcase WHERE id=?)", s.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

// Delete hard-deletes a slide; deleting a missing id is a no-op.
func (r *ShowcaseRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM collection_showcase WHERE id=?", id)
	return err
}

// SeedDefaults inserts the bundled slides when the table is empty. The lead
// slide carries the statement layout explicitly so rendering never has to
// guess from titles or positions.
func (r *ShowcaseRepo) SeedDefaults(ctx context.Context, slides []model.ShowcaseSlide) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM collection_showcase").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i := range slides {
		if err := r.Create(ctx, &slides[i]); err != nil {
			return err
		}
	}
	return nil
}
