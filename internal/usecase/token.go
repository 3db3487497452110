package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/vadimbarashkov/slug-shortener/internal/entity"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating token")

const (
	DefaultTokenLength     = 32
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 30 * 24 * time.Hour
	DefaultMaxAttempts     = 5
)

type tokenRepository interface {
	SaveRefreshToken(ctx context.Context, token string, expiresAt time.Time) (*entity.RefreshToken, error)
	RetrieveRefreshTokenByID(ctx context.Context, id int64) (*entity.RefreshToken, error)
	RetrieveRefreshTokenByToken(ctx context.Context, token string) (*entity.RefreshToken, error)
	SaveAccessToken(ctx context.Context, token string, expiresAt time.Time, refreshTokenID int64) (*entity.AccessToken, error)
	RetrieveAccessTokenByToken(ctx context.Context, token string) (*entity.AccessToken, error)
}

type TokenUseCase struct {
	tokenRepo       tokenRepository
	tokenLength     int
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	maxAttempts     uint64
	newBackOff      func() backoff.BackOff
	now             func() time.Time
}

// TokenOption customizes a TokenUseCase.
type TokenOption func(*TokenUseCase)

func WithTokenLength(n int) TokenOption {
	return func(uc *TokenUseCase) {
		if n > 0 {
			uc.tokenLength = n
		}
	}
}

func WithAccessTokenTTL(d time.Duration) TokenOption {
	return func(uc *TokenUseCase) {
		if d > 0 {
			uc.accessTokenTTL = d
		}
	}
}

func WithRefreshTokenTTL(d time.Duration) TokenOption {
	return func(uc *TokenUseCase) {
		if d > 0 {
			uc.refreshTokenTTL = d
		}
	}
}

// WithMaxAttempts bounds how many times a colliding token is regenerated.
func WithMaxAttempts(n int) TokenOption {
	return func(uc *TokenUseCase) {
		if n > 0 {
			uc.maxAttempts = uint64(n)
		}
	}
}

// WithBackOff sets the policy used between attempts after a token collision.
func WithBackOff(newBackOff func() backoff.BackOff) TokenOption {
	return func(uc *TokenUseCase) {
		if newBackOff != nil {
			uc.newBackOff = newBackOff
		}
	}
}

func NewTokenUseCase(tokenRepo tokenRepository, opts ...TokenOption) *TokenUseCase {
	uc := &TokenUseCase{
		tokenRepo:       tokenRepo,
		tokenLength:     DefaultTokenLength,
		accessTokenTTL:  DefaultAccessTokenTTL,
		refreshTokenTTL: DefaultRefreshTokenTTL,
		maxAttempts:     DefaultMaxAttempts,
		newBackOff:      defaultBackOff,
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	return b
}

func (uc *TokenUseCase) IssueRefreshToken(ctx context.Context) (*entity.RefreshToken, error) {
	const op = "usecase.TokenUseCase.IssueRefreshToken"

	expiresAt := uc.now().Add(uc.refreshTokenTTL)

	var rt *entity.RefreshToken
	err := uc.retryOnCollision(ctx, func(token string) error {
		var err error
		rt, err = uc.tokenRepo.SaveRefreshToken(ctx, token, expiresAt)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to issue refresh token: %w", op, err)
	}

	return rt, nil
}

func (uc *TokenUseCase) RefreshTokenByID(ctx context.Context, id int64) (*entity.RefreshToken, error) {
	const op = "usecase.TokenUseCase.RefreshTokenByID"

	if id <= 0 {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidRefreshToken)
	}

	rt, err := uc.checkRefreshToken(uc.tokenRepo.RetrieveRefreshTokenByID(ctx, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rt, nil
}

func (uc *TokenUseCase) RefreshTokenByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	const op = "usecase.TokenUseCase.RefreshTokenByToken"

	if token == "" {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidRefreshToken)
	}

	rt, err := uc.checkRefreshToken(uc.tokenRepo.RetrieveRefreshTokenByToken(ctx, token))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rt, nil
}

// IssueAccessToken issues an access token for a valid refresh token. The
// access token never outlives the refresh token it was issued for.
func (uc *TokenUseCase) IssueAccessToken(ctx context.Context, refreshTokenID int64) (*entity.AccessToken, error) {
	const op = "usecase.TokenUseCase.IssueAccessToken"

	rt, err := uc.RefreshTokenByID(ctx, refreshTokenID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	expiresAt := uc.now().Add(uc.accessTokenTTL)
	if rt.ExpiresAt.Before(expiresAt) {
		expiresAt = rt.ExpiresAt
	}

	var at *entity.AccessToken
	err = uc.retryOnCollision(ctx, func(token string) error {
		var err error
		at, err = uc.tokenRepo.SaveAccessToken(ctx, token, expiresAt, rt.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to issue access token: %w", op, err)
	}

	return at, nil
}

func (uc *TokenUseCase) AccessTokenByToken(ctx context.Context, token string) (*entity.AccessToken, error) {
	const op = "usecase.TokenUseCase.AccessTokenByToken"

	if token == "" {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidAccessToken)
	}

	at, err := uc.tokenRepo.RetrieveAccessTokenByToken(ctx, token)
	if err != nil {
		if errors.Is(err, entity.ErrAccessTokenNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return nil, fmt.Errorf("%s: %w: %w", op, entity.ErrInvalidAccessToken, err)
	}

	if at.IsExpired(uc.now()) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrAccessTokenExpired)
	}

	return at, nil
}

func (uc *TokenUseCase) checkRefreshToken(rt *entity.RefreshToken, err error) (*entity.RefreshToken, error) {
	if err != nil {
		if errors.Is(err, entity.ErrRefreshTokenNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidRefreshToken, err)
	}

	if rt.IsExpired(uc.now()) {
		return nil, entity.ErrRefreshTokenExpired
	}

	return rt, nil
}

// retryOnCollision generates a fresh token and hands it to insert until the
// insert succeeds, fails with something other than entity.ErrTokenExists, or
// maxAttempts is reached.
func (uc *TokenUseCase) retryOnCollision(ctx context.Context, insert func(token string) error) error {
	attempt := func() error {
		token, err := gonanoid.New(uc.tokenLength)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to generate token: %w", err))
		}

		if err := insert(token); err != nil {
			if errors.Is(err, entity.ErrTokenExists) {
				return err
			}

			return backoff.Permanent(err)
		}

		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(uc.newBackOff(), uc.maxAttempts-1), ctx)

	err := backoff.Retry(attempt, b)
	if errors.Is(err, entity.ErrTokenExists) {
		return fmt.Errorf("%w: %w", ErrMaxRetriesExceeded, err)
	}

	return err
}
