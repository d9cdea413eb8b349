package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct{ DB *pgxpool.Pool }

const productCols = `id, slug, name, description, price_pence, category, material, stock_status, image_url, created_at`

func (s *PGStore) List(ctx context.Context, f Filter) ([]Product, error) {
	q := `SELECT ` + productCols + ` FROM products`
	var (
		conds []string
		args  []any
	)
	if c := normCategory(f.Category); c != "" {
		args = append(args, c)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.StockStatus != "" {
		args = append(args, f.StockStatus)
		conds = append(conds, fmt.Sprintf("stock_status = $%d", len(args)))
	}
	if f.Material != "" {
		args = append(args, "%"+f.Material+"%")
		conds = append(conds, fmt.Sprintf("material ILIKE $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			q += " WHERE " + c
		} else {
			q += " AND " + c
		}
	}
	q += " ORDER BY created_at DESC"

	rows, err := s.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Slug, &p.Name, &p.Description, &p.PricePence,
			&p.Category, &p.Material, &p.StockStatus, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PGStore) GetBySlug(ctx context.Context, slug string) (Product, error) {
	var p Product
	err := s.DB.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE slug=$1`, slug).
		Scan(&p.ID, &p.Slug, &p.Name, &p.Description, &p.PricePence,
			&p.Category, &p.Material, &p.StockStatus, &p.ImageURL, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}
