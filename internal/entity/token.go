package entity

import (
	"errors"
	"time"
)

var (
	// ErrTokenExists is returned when a freshly generated token collides with a stored one.
	ErrTokenExists = errors.New("token exists")

	ErrAccessTokenNotFound = errors.New("access token not found")
	ErrAccessTokenExpired  = errors.New("access token expired")
	ErrInvalidAccessToken  = errors.New("invalid access token")

	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
)

// RefreshToken is a long-lived opaque token. Access tokens are issued against it.
type RefreshToken struct {
	ID        int64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired reports whether the token is no longer valid at now.
// A token is valid only while now is strictly before ExpiresAt.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// AccessToken is a short-lived opaque token bound to the refresh token it was issued for.
type AccessToken struct {
	ID             int64
	Token          string
	ExpiresAt      time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	RefreshTokenID int64
}

// IsExpired reports whether the token is no longer valid at now.
func (t *AccessToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
