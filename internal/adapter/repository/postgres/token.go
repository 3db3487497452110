package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/slug-shortener/internal/entity"

	pg "github.com/vadimbarashkov/slug-shortener/pkg/postgres"
)

const (
	refreshTokenColumns = `id, token, expires_at, created_at, updated_at`
	accessTokenColumns  = `id, token, expires_at, created_at, updated_at, refresh_token_id`
)

type refreshTokenDB struct {
	ID        int64     `db:"id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (t *refreshTokenDB) toEntity() *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        t.ID,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type accessTokenDB struct {
	ID             int64     `db:"id"`
	Token          string    `db:"token"`
	ExpiresAt      time.Time `db:"expires_at"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
	RefreshTokenID int64     `db:"refresh_token_id"`
}

func (t *accessTokenDB) toEntity() *entity.AccessToken {
	return &entity.AccessToken{
		ID:             t.ID,
		Token:          t.Token,
		ExpiresAt:      t.ExpiresAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		RefreshTokenID: t.RefreshTokenID,
	}
}

type TokenRepository struct {
	db *sqlx.DB
}

func NewTokenRepository(db *sqlx.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) SaveRefreshToken(ctx context.Context, token string, expiresAt time.Time) (*entity.RefreshToken, error) {
	const op = "adapter.repository.postgres.TokenRepository.SaveRefreshToken"
	const query = `INSERT INTO refresh_tokens(token, expires_at) VALUES ($1, $2) RETURNING ` + refreshTokenColumns

	var rt refreshTokenDB

	if err := r.db.GetContext(ctx, &rt, query, token, expiresAt); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrTokenExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into refresh_tokens table: %w", op, err)
	}

	return rt.toEntity(), nil
}

func (r *TokenRepository) RetrieveRefreshTokenByID(ctx context.Context, id int64) (*entity.RefreshToken, error) {
	const op = "adapter.repository.postgres.TokenRepository.RetrieveRefreshTokenByID"
	const query = `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE id = $1`

	var rt refreshTokenDB

	if err := r.db.GetContext(ctx, &rt, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrRefreshTokenNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from refresh_tokens table: %w", op, err)
	}

	return rt.toEntity(), nil
}

func (r *TokenRepository) RetrieveRefreshTokenByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	const op = "adapter.repository.postgres.TokenRepository.RetrieveRefreshTokenByToken"
	const query = `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE token = $1`

	var rt refreshTokenDB

	if err := r.db.GetContext(ctx, &rt, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrRefreshTokenNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from refresh_tokens table: %w", op, err)
	}

	return rt.toEntity(), nil
}

func (r *TokenRepository) SaveAccessToken(ctx context.Context, token string, expiresAt time.Time, refreshTokenID int64) (*entity.AccessToken, error) {
	const op = "adapter.repository.postgres.TokenRepository.SaveAccessToken"
	const query = `INSERT INTO access_tokens(token, expires_at, refresh_token_id) VALUES ($1, $2, $3) RETURNING ` + accessTokenColumns

	var at accessTokenDB

	if err := r.db.GetContext(ctx, &at, query, token, expiresAt, refreshTokenID); err != nil {
		switch {
		case pg.IsUniqueViolation(err):
			return nil, fmt.Errorf("%s: %w", op, entity.ErrTokenExists)
		case pg.IsForeignKeyViolation(err):
			return nil, fmt.Errorf("%s: %w", op, entity.ErrRefreshTokenNotFound)
		}

		return nil, fmt.Errorf("%s: failed to insert into access_tokens table: %w", op, err)
	}

	return at.toEntity(), nil
}

func (r *TokenRepository) RetrieveAccessTokenByToken(ctx context.Context, token string) (*entity.AccessToken, error) {
	const op = "adapter.repository.postgres.TokenRepository.RetrieveAccessTokenByToken"
	const query = `SELECT ` + accessTokenColumns + ` FROM access_tokens WHERE token = $1`

	var at accessTokenDB

	if err := r.db.GetContext(ctx, &at, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrAccessTokenNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from access_tokens table: %w", op, err)
	}

	return at.toEntity(), nil
}
