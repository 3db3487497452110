// Package postgres implements the record and token repositories on top of a
// pooled *sqlx.DB.
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

const recordColumns = `id, slug, url, created_at, last_used_at`

// recordsSlugKey is the unique constraint on records.slug.
const recordsSlugKey = "records_slug_key"

type recordDB struct {
	ID         int64        `db:"id"`
	Slug       string       `db:"slug"`
	URL        string       `db:"url"`
	CreatedAt  time.Time    `db:"created_at"`
	LastUsedAt sql.NullTime `db:"last_used_at"`
}

func (r *recordDB) toEntity() *entity.Record {
	rec := &entity.Record{
		ID:        r.ID,
		Slug:      r.Slug,
		URL:       r.URL,
		CreatedAt: r.CreatedAt,
	}

	if r.LastUsedAt.Valid {
		lastUsedAt := r.LastUsedAt.Time
		rec.LastUsedAt = &lastUsedAt
	}

	return rec
}

type RecordRepository struct {
	db *sqlx.DB
}

func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) Save(ctx context.Context, slug, url string) (*entity.Record, error) {
	const op = "adapter.repository.postgres.RecordRepository.Save"
	const query = `INSERT INTO records(slug, url) VALUES ($1, $2) RETURNING ` + recordColumns

	var rec recordDB

	if err := r.db.GetContext(ctx, &rec, query, slug, url); err != nil {
		if pg.IsUniqueViolation(err) && pg.ConstraintName(err) == recordsSlugKey {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrRecordExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into records table: %w", op, err)
	}

	return rec.toEntity(), nil
}

func (r *RecordRepository) Update(ctx context.Context, slug, url string) (*entity.Record, error) {
	const op = "adapter.repository.postgres.RecordRepository.Update"
	const query = `UPDATE records SET url = $1 WHERE slug = $2 RETURNING ` + recordColumns

	var rec recordDB

	if err := r.db.GetContext(ctx, &rec, query, url, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrRecordNotFound)
		}

		return nil, fmt.Errorf("%s: failed to update records table row: %w", op, err)
	}

	return rec.toEntity(), nil
}

func (r *RecordRepository) RetrieveBySlug(ctx context.Context, slug string) (*entity.Record, error) {
	const op = "adapter.repository.postgres.RecordRepository.RetrieveBySlug"
	const query = `SELECT ` + recordColumns + ` FROM records WHERE slug = $1 LIMIT 1`

	var rec recordDB

	if err := r.db.GetContext(ctx, &rec, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrRecordNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from records table: %w", op, err)
	}

	return rec.toEntity(), nil
}

// RetrieveLastUsed returns at most count records, most recently used first.
// Records that were never used sort after every used one, ties by id descending.
func (r *RecordRepository) RetrieveLastUsed(ctx context.Context, count int) ([]*entity.Record, error) {
	const op = "adapter.repository.postgres.RecordRepository.RetrieveLastUsed"
	const query = `SELECT ` + recordColumns + ` FROM records
		ORDER BY last_used_at DESC NULLS LAST, id DESC
		LIMIT $1`

	var rows []recordDB

	if err := r.db.SelectContext(ctx, &rows, query, count); err != nil {
		return nil, fmt.Errorf("%s: failed to select rows from records table: %w", op, err)
	}

	recs := make([]*entity.Record, 0, len(rows))
	for i := range rows {
		recs = append(recs, rows[i].toEntity())
	}

	return recs, nil
}

// TouchLastUsed stamps the record with the database's current time and returns it.
func (r *RecordRepository) TouchLastUsed(ctx context.Context, id int64) (time.Time, error) {
	const op = "adapter.repository.postgres.RecordRepository.TouchLastUsed"
	const query = `UPDATE records SET last_used_at = now() WHERE id = $1 RETURNING last_used_at`

	var lastUsedAt time.Time

	if err := r.db.GetContext(ctx, &lastUsedAt, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, fmt.Errorf("%s: %w", op, entity.ErrRecordNotFound)
		}

		return time.Time{}, fmt.Errorf("%s: failed to update records table row: %w", op, err)
	}

	return lastUsedAt, nil
}
