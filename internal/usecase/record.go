package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vadimbarashkov/slug-shortener/internal/entity"
)

const (
	DefaultListCount = 5
	MaxListCount     = 100
)

type recordRepository interface {
	Save(ctx context.Context, slug, url string) (*entity.Record, error)
	Update(ctx context.Context, slug, url string) (*entity.Record, error)
	RetrieveBySlug(ctx context.Context, slug string) (*entity.Record, error)
	RetrieveLastUsed(ctx context.Context, count int) ([]*entity.Record, error)
	TouchLastUsed(ctx context.Context, id int64) (time.Time, error)
}

type RecordUseCase struct {
	logger       *slog.Logger
	recordRepo   recordRepository
	defaultCount int
	maxCount     int
}

// RecordOption customizes a RecordUseCase.
type RecordOption func(*RecordUseCase)

// WithListCounts overrides the default and maximum number of records ListRecentlyUsed returns.
func WithListCounts(defaultCount, maxCount int) RecordOption {
	return func(uc *RecordUseCase) {
		if defaultCount > 0 {
			uc.defaultCount = defaultCount
		}
		if maxCount > 0 {
			uc.maxCount = maxCount
		}
		if uc.defaultCount > uc.maxCount {
			uc.defaultCount = uc.maxCount
		}
	}
}

func NewRecordUseCase(logger *slog.Logger, recordRepo recordRepository, opts ...RecordOption) *RecordUseCase {
	uc := &RecordUseCase{
		logger:       logger,
		recordRepo:   recordRepo,
		defaultCount: DefaultListCount,
		maxCount:     MaxListCount,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// CreateRecord stores slug -> url. When the slug is already taken the stored
// url is replaced only if overwrite is set; otherwise entity.ErrRecordExists
// is returned and the stored record is left untouched. The boolean result
// reports whether an existing record was overwritten.
func (uc *RecordUseCase) CreateRecord(ctx context.Context, slug, url string, overwrite bool) (*entity.Record, bool, error) {
	const op = "usecase.RecordUseCase.CreateRecord"

	rec, err := uc.recordRepo.Save(ctx, slug, url)
	if err == nil {
		return rec, false, nil
	}

	if !errors.Is(err, entity.ErrRecordExists) || !overwrite {
		return nil, false, fmt.Errorf("%s: failed to create record: %w", op, err)
	}

	rec, err = uc.recordRepo.Update(ctx, slug, url)
	if err != nil {
		return nil, false, fmt.Errorf("%s: failed to overwrite record: %w", op, err)
	}

	return rec, true, nil
}

// ResolveSlug looks the slug up and records the access. Failing to record the
// access is logged and does not fail the lookup.
func (uc *RecordUseCase) ResolveSlug(ctx context.Context, slug string) (*entity.Record, error) {
	const op = "usecase.RecordUseCase.ResolveSlug"

	rec, err := uc.recordRepo.RetrieveBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve slug: %w", op, err)
	}

	lastUsedAt, err := uc.recordRepo.TouchLastUsed(ctx, rec.ID)
	if err != nil {
		uc.logger.WarnContext(ctx, "failed to update last used time",
			slog.String("op", op),
			slog.String("slug", slug),
			slog.Int64("id", rec.ID),
			slog.Any("err", err),
		)

		return rec, nil
	}

	rec.LastUsedAt = &lastUsedAt

	return rec, nil
}

// ListRecentlyUsed returns up to count records, most recently used first.
// A non-positive count falls back to the default, a large one is capped.
func (uc *RecordUseCase) ListRecentlyUsed(ctx context.Context, count int) ([]*entity.Record, error) {
	const op = "usecase.RecordUseCase.ListRecentlyUsed"

	switch {
	case count <= 0:
		count = uc.defaultCount
	case count > uc.maxCount:
		count = uc.maxCount
	}

	recs, err := uc.recordRepo.RetrieveLastUsed(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list records: %w", op, err)
	}

	return recs, nil
}
