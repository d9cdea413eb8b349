package dolly

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGShareStore struct{ DB *pgxpool.Pool }

func (s *PGShareStore) Save(ctx context.Context, sc SavedConfig) error {
	_, err := s.DB.Exec(ctx, `
		INSERT INTO dolly_configs(share_id, config, total_price, user_email)
		VALUES ($1, $2, $3, $4)`,
		sc.ShareID, []byte(sc.Config), sc.TotalPrice, nullable(sc.UserEmail))
	return err
}

func (s *PGShareStore) Get(ctx context.Context, shareID string) (SavedConfig, error) {
	sc := SavedConfig{ShareID: shareID}
	var email *string
	err := s.DB.QueryRow(ctx, `
		SELECT config, total_price, user_email, created_at
		FROM dolly_configs WHERE share_id=$1`, shareID).
		Scan(&sc.Config, &sc.TotalPrice, &email, &sc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return SavedConfig{}, ErrNotFound
	}
	if err != nil {
		return SavedConfig{}, err
	}
	if email != nil {
		sc.UserEmail = *email
	}
	return sc, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
