package leads

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGRepo struct{ DB *pgxpool.Pool }

func (r *PGRepo) Create(ctx context.Context, l *Lead) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return r.DB.QueryRow(ctx, `
		INSERT INTO leads(id, first_name, last_name, email, phone, request_type, message, attachments, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		l.ID, l.FirstName, l.LastName, l.Email, l.Phone, l.RequestType, l.Message, l.Attachments, l.Status).
		Scan(&l.CreatedAt)
}

func (r *PGRepo) List(ctx context.Context) ([]Lead, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, first_name, last_name, email, phone, request_type, message, attachments, status, created_at
		FROM leads ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.FirstName, &l.LastName, &l.Email, &l.Phone,
			&l.RequestType, &l.Message, &l.Attachments, &l.Status, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
