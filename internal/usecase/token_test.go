package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/slug-shortener/internal/entity"

	usecaseMock "github.com/vadimbarashkov/slug-shortener/mocks/usecase"
)

type TokenUseCaseTestSuite struct {
	suite.Suite
	errUnknown    error
	now           time.Time
	tokenRepoMock *usecaseMock.MockTokenRepository
	uc            *TokenUseCase
}

func (suite *TokenUseCaseTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *TokenUseCaseTestSuite) SetupSubTest() {
	suite.tokenRepoMock = usecaseMock.NewMockTokenRepository(suite.T())
	suite.uc = NewTokenUseCase(suite.tokenRepoMock,
		WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} }),
	)
	suite.uc.now = func() time.Time { return suite.now }
}

func (suite *TokenUseCaseTestSuite) validRefreshToken() *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        1,
		Token:     "refresh",
		ExpiresAt: suite.now.Add(DefaultRefreshTokenTTL),
	}
}

func (suite *TokenUseCaseTestSuite) TestIssueRefreshToken() {
	tokenOfDefaultLength := mock.MatchedBy(func(token string) bool {
		return len(token) == DefaultTokenLength
	})
	wantExpiresAt := suite.now.Add(DefaultRefreshTokenTTL)

	suite.Run("token generation error", func() {
		suite.uc.tokenLength = -1

		rt, err := suite.uc.IssueRefreshToken(context.Background())

		suite.Error(err)
		suite.Nil(rt)
	})

	suite.Run("maximum retries error", func() {
		suite.tokenRepoMock.
			On("SaveRefreshToken", mock.Anything, tokenOfDefaultLength, wantExpiresAt).
			Times(DefaultMaxAttempts).
			Return(nil, entity.ErrTokenExists)

		rt, err := suite.uc.IssueRefreshToken(context.Background())

		suite.Error(err)
		suite.ErrorIs(err, ErrMaxRetriesExceeded)
		suite.Nil(rt)
	})

	suite.Run("collision then success", func() {
		suite.tokenRepoMock.
			On("SaveRefreshToken", mock.Anything, tokenOfDefaultLength, wantExpiresAt).
			Twice().
			Return(nil, entity.ErrTokenExists)
		suite.tokenRepoMock.
			On("SaveRefreshToken", mock.Anything, tokenOfDefaultLength, wantExpiresAt).
			Once().
			Return(&entity.RefreshToken{ID: 1, Token: "refresh", ExpiresAt: wantExpiresAt}, nil)

		rt, err := suite.uc.IssueRefreshToken(context.Background())

		suite.NoError(err)
		suite.Equal(int64(1), rt.ID)
	})

	suite.Run("unknown error is not retried", func() {
		suite.tokenRepoMock.
			On("SaveRefreshToken", mock.Anything, tokenOfDefaultLength, wantExpiresAt).
			Once().
			Return(nil, suite.errUnknown)

		rt, err := suite.uc.IssueRefreshToken(context.Background())

		suite.ErrorIs(err, suite.errUnknown)
		suite.NotErrorIs(err, ErrMaxRetriesExceeded)
		suite.Nil(rt)
	})

	suite.Run("cancelled context stops retrying", func() {
		ctx, cancel := context.WithCancel(context.Background())

		suite.tokenRepoMock.
			On("SaveRefreshToken", mock.Anything, tokenOfDefaultLength, wantExpiresAt).
			Once().
			Run(func(mock.Arguments) { cancel() }).
			Return(nil, entity.ErrTokenExists)

		rt, err := suite.uc.IssueRefreshToken(ctx)

		suite.ErrorIs(err, context.Canceled)
		suite.Nil(rt)
	})

	suite.Run("success", func() {
		suite.tokenRepoMock.
			On("SaveRefreshToken", mock.Anything, tokenOfDefaultLength, wantExpiresAt).
			Once().
			Return(&entity.RefreshToken{ID: 1, Token: "refresh", ExpiresAt: wantExpiresAt}, nil)

		rt, err := suite.uc.IssueRefreshToken(context.Background())

		suite.NoError(err)
		suite.Equal(wantExpiresAt, rt.ExpiresAt)
	})
}

func (suite *TokenUseCaseTestSuite) TestRefreshTokenByToken() {
	suite.Run("empty token", func() {
		rt, err := suite.uc.RefreshTokenByToken(context.Background(), "")

		suite.ErrorIs(err, entity.ErrInvalidRefreshToken)
		suite.Nil(rt)
	})

	suite.Run("refresh token not found", func() {
		suite.tokenRepoMock.
			On("RetrieveRefreshTokenByToken", mock.Anything, "refresh").
			Once().
			Return(nil, entity.ErrRefreshTokenNotFound)

		rt, err := suite.uc.RefreshTokenByToken(context.Background(), "refresh")

		suite.ErrorIs(err, entity.ErrRefreshTokenNotFound)
		suite.NotErrorIs(err, entity.ErrRefreshTokenExpired)
		suite.Nil(rt)
	})

	suite.Run("refresh token expired", func() {
		suite.tokenRepoMock.
			On("RetrieveRefreshTokenByToken", mock.Anything, "refresh").
			Once().
			Return(&entity.RefreshToken{ID: 1, Token: "refresh", ExpiresAt: suite.now.Add(-time.Second)}, nil)

		rt, err := suite.uc.RefreshTokenByToken(context.Background(), "refresh")

		suite.ErrorIs(err, entity.ErrRefreshTokenExpired)
		suite.NotErrorIs(err, entity.ErrRefreshTokenNotFound)
		suite.Nil(rt)
	})

	suite.Run("lookup failure is invalid", func() {
		suite.tokenRepoMock.
			On("RetrieveRefreshTokenByToken", mock.Anything, "refresh").
			Once().
			Return(nil, suite.errUnknown)

		rt, err := suite.uc.RefreshTokenByToken(context.Background(), "refresh")

		suite.ErrorIs(err, entity.ErrInvalidRefreshToken)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(rt)
	})

	suite.Run("success", func() {
		suite.tokenRepoMock.
			On("RetrieveRefreshTokenByToken", mock.Anything, "refresh").
			Once().
			Return(suite.validRefreshToken(), nil)

		rt, err := suite.uc.RefreshTokenByToken(context.Background(), "refresh")

		suite.NoError(err)
		suite.Equal("refresh", rt.Token)
	})
}

func (suite *TokenUseCaseTestSuite) TestRefreshTokenByID() {
	suite.Run("non-positive id", func() {
		rt, err := suite.uc.RefreshTokenByID(context.Background(), 0)

		suite.ErrorIs(err, entity.ErrInvalidRefreshToken)
		suite.Nil(rt)
	})

	suite.Run("refresh token expires right now", func() {
		suite.tokenRepoMock.
			On("RetrieveRefreshTokenByID", mock.Anything, int64(1)).
			Once().
			Return(&entity.RefreshToken{ID: 1, ExpiresAt: suite.now}, nil)

		rt, err := suite.uc.RefreshTokenByID(context.Background(), 1)

		suite.ErrorIs(err, entity.ErrRefreshTokenExpired)
		suite.Nil(rt)
	})

	suite.Run("success", func() {
		suite.tokenRepoMock.
			On("RetrieveRefreshTokenByID", mock.Anything, int64(1)).
			Once().
			Return(suite.validRefreshToken(), nil)

		rt, err := suite.uc.RefreshTokenByID(context.Background(), 1)

		suite.NoError(err)
		suite.Equal(int64(1), rt.ID)
	})
}

func (suite *TokenUseCaseTestSuite) TestIssueAccessToken() {
	wantExpiresAt := suite.now.Add(DefaultAccessTokenTTL)

	suite.Run("refresh token not found", func() {
		suite.tokenRepoMock.
			On("RetrieveRefreshTokenByID", mock.Anything, int64(1)).
			Once().
			Return(nil, entity.ErrRefreshTokenNotFound)

		at, err := suite.uc.IssueAccessToken(context.Background(), 1)

		suite.ErrorIs(err, entity.ErrRefreshTokenNotFound)
		suite.Nil(at)
		suite.tokenRepoMock.AssertNotCalled(suite.T(), "SaveAccessToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	suite.Run("refresh token expired", func() {
		suite.tokenRepoMock.
			On("RetrieveRefreshTokenByID", mock.Anything, int64(1)).
			Once().
			Return(&entity.RefreshToken{ID: 1, ExpiresAt: suite.now.Add(-time.Hour)}, nil)

		at, err := suite.uc.IssueAccessToken(context.Background(), 1)

		suite.ErrorIs(err, entity.ErrRefreshTokenExpired)
		suite.Nil(at)
		suite.tokenRepoMock.AssertNotCalled(suite.T(), "SaveAccessToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	suite.Run("maximum retries error", func() {
		suite.tokenRepoMock.
			On("RetrieveRefreshTokenByID", mock.Anything, int64(1)).
			Once().
			Return(suite.validRefreshToken(), nil)
		suite.tokenRepoMock.
			On("SaveAccessToken", mock.Anything, mock.Anything, wantExpiresAt, int64(1)).
			Times(DefaultMaxAttempts).
			Return(nil, entity.ErrTokenExists)

		at, err := suite.uc.IssueAccessToken(context.Background(), 1)

		suite.ErrorIs(err, ErrMaxRetriesExceeded)
		suite.Nil(at)
	})

	suite.Run("refresh token vanished before insert", func() {
		suite.tokenRepoMock.
			On("RetrieveRefreshTokenByID", mock.Anything, int64(1)).
			Once().
			Return(suite.validRefreshToken(), nil)
		suite.tokenRepoMock.
			On("SaveAccessToken", mock.Anything, mock.Anything, wantExpiresAt, int64(1)).
			Once().
			Return(nil, entity.ErrRefreshTokenNotFound)

		at, err := suite.uc.IssueAccessToken(context.Background(), 1)

		suite.ErrorIs(err, entity.ErrRefreshTokenNotFound)
		suite.Nil(at)
	})

	suite.Run("expiry capped by refresh token", func() {
		refreshExpiresAt := suite.now.Add(time.Minute)

		suite.tokenRepoMock.
			On("RetrieveRefreshTokenByID", mock.Anything, int64(1)).
			Once().
			Return(&entity.RefreshToken{ID: 1, ExpiresAt: refreshExpiresAt}, nil)
		suite.tokenRepoMock.
			On("SaveAccessToken", mock.Anything, mock.Anything, refreshExpiresAt, int64(1)).
			Once().
			Return(&entity.AccessToken{ID: 3, ExpiresAt: refreshExpiresAt, RefreshTokenID: 1}, nil)

		at, err := suite.uc.IssueAccessToken(context.Background(), 1)

		suite.NoError(err)
		suite.Equal(refreshExpiresAt, at.ExpiresAt)
	})

	suite.Run("success", func() {
		suite.tokenRepoMock.
			On("RetrieveRefreshTokenByID", mock.Anything, int64(1)).
			Once().
			Return(suite.validRefreshToken(), nil)
		suite.tokenRepoMock.
			On("SaveAccessToken", mock.Anything, mock.Anything, wantExpiresAt, int64(1)).
			Once().
			Return(&entity.AccessToken{ID: 3, Token: "access", ExpiresAt: wantExpiresAt, RefreshTokenID: 1}, nil)

		at, err := suite.uc.IssueAccessToken(context.Background(), 1)

		suite.NoError(err)
		suite.Equal(int64(1), at.RefreshTokenID)
	})
}

func (suite *TokenUseCaseTestSuite) TestAccessTokenByToken() {
	suite.Run("empty token", func() {
		at, err := suite.uc.AccessTokenByToken(context.Background(), "")

		suite.ErrorIs(err, entity.ErrInvalidAccessToken)
		suite.Nil(at)
	})

	suite.Run("access token not found", func() {
		suite.tokenRepoMock.
			On("RetrieveAccessTokenByToken", mock.Anything, "access").
			Once().
			Return(nil, entity.ErrAccessTokenNotFound)

		at, err := suite.uc.AccessTokenByToken(context.Background(), "access")

		suite.ErrorIs(err, entity.ErrAccessTokenNotFound)
		suite.NotErrorIs(err, entity.ErrAccessTokenExpired)
		suite.Nil(at)
	})

	suite.Run("access token expired", func() {
		suite.tokenRepoMock.
			On("RetrieveAccessTokenByToken", mock.Anything, "access").
			Once().
			Return(&entity.AccessToken{ID: 3, Token: "access", ExpiresAt: suite.now.Add(-time.Minute)}, nil)

		at, err := suite.uc.AccessTokenByToken(context.Background(), "access")

		suite.ErrorIs(err, entity.ErrAccessTokenExpired)
		suite.NotErrorIs(err, entity.ErrAccessTokenNotFound)
		suite.Nil(at)
	})

	suite.Run("lookup failure is invalid", func() {
		suite.tokenRepoMock.
			On("RetrieveAccessTokenByToken", mock.Anything, "access").
			Once().
			Return(nil, suite.errUnknown)

		at, err := suite.uc.AccessTokenByToken(context.Background(), "access")

		suite.ErrorIs(err, entity.ErrInvalidAccessToken)
		suite.Nil(at)
	})

	suite.Run("success", func() {
		suite.tokenRepoMock.
			On("RetrieveAccessTokenByToken", mock.Anything, "access").
			Once().
			Return(&entity.AccessToken{ID: 3, Token: "access", ExpiresAt: suite.now.Add(time.Minute)}, nil)

		at, err := suite.uc.AccessTokenByToken(context.Background(), "access")

		suite.NoError(err)
		suite.Equal("access", at.Token)
	})
}

func TestTokenUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(TokenUseCaseTestSuite))
}

func TestNewTokenUseCase(t *testing.T) {
	uc := NewTokenUseCase(nil,
		WithTokenLength(16),
		WithAccessTokenTTL(time.Minute),
		WithRefreshTokenTTL(time.Hour),
		WithMaxAttempts(3),
	)

	assert.Equal(t, 16, uc.tokenLength)
	assert.Equal(t, time.Minute, uc.accessTokenTTL)
	assert.Equal(t, time.Hour, uc.refreshTokenTTL)
	assert.Equal(t, uint64(3), uc.maxAttempts)
}
