package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bizpeer/cdg-beauty/internal/model"
)

// ProductRepo encapsulates all queries against the `products` table. The
// catalog is seeded once and only ever updated afterwards; there are no
// create or delete operations.
type ProductRepo struct{ DB *sql.DB }

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{DB: db} }

const productColumns = "id, name, tagline, category, img, color_code, texture"

// List returns the whole catalog, skin line first, in seed order. The enum
// sorts by declaration index, so ascending order puts skin before color.
func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY category, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Tagline, &p.Category, &p.Img, &p.ColorCode, &p.Texture); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches a single product or ErrNotFound.
func (r *ProductRepo) GetByID(ctx context.Context, id uint64) (model.Product, error) {
	var p model.Product
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id=? LIMIT 1", id).
		Scan(&p.ID, &p.Name, &p.Tagline, &p.Category, &p.Img, &p.ColorCode, &p.Texture)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, ErrNotFound
	}
	return p, err
}

// Update overwrites every editable field. Field values are stored verbatim;
// in particular the img path round-trips without transformation.
func (r *ProductRepo) Update(ctx context.Context, p *model.Product) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE products SET name=?, tagline=?, category=?, img=?, color_code=?, texture=? WHERE id=?",
		p.Name, p.Tagline, p.Category, p.Img, p.ColorCode, p.Texture, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish "no such row" from "update was a no-op".
		if _, err := r.GetByID(ctx, p.ID); err != nil {
			return err
		}
	}
	return nil
}

// SeedDefaults inserts the bundled catalog when the table is empty.
func (r *ProductRepo) SeedDefaults(ctx context.Context, products []model.Product) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, p := range products {
		if _, err := r.DB.ExecContext(ctx,
			"INSERT INTO products (name, tagline, category, img, color_code, texture) VALUES (?,?,?,?,?,?)",
			p.Name, p.Tagline, p.Category, p.Img, p.ColorCode, p.Texture); err != nil {
			return err
		}
	}
	return nil
}
