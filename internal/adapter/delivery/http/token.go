package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/slug-shortener/internal/entity"
)

type tokenUseCase interface {
	IssueRefreshToken(ctx context.Context) (*entity.RefreshToken, error)
	RefreshTokenByToken(ctx context.Context, token string) (*entity.RefreshToken, error)
	IssueAccessToken(ctx context.Context, refreshTokenID int64) (*entity.AccessToken, error)
	AccessTokenByToken(ctx context.Context, token string) (*entity.AccessToken, error)
}

type tokenHandler struct {
	useCase  tokenUseCase
	validate *validator.Validate
}

func newTokenHandler(useCase tokenUseCase, validate *validator.Validate) *tokenHandler {
	return &tokenHandler{
		useCase:  useCase,
		validate: validate,
	}
}

// tokenErrorStatus maps token errors to a status code. Not found and expired
// are kept apart so clients can tell "reject" from "re-authenticate".
func tokenErrorStatus(err error) (int, errorResponse) {
	for _, known := range []struct {
		err    error
		status int
	}{
		{entity.ErrAccessTokenNotFound, http.StatusNotFound},
		{entity.ErrRefreshTokenNotFound, http.StatusNotFound},
		{entity.ErrAccessTokenExpired, http.StatusUnauthorized},
		{entity.ErrRefreshTokenExpired, http.StatusUnauthorized},
		{entity.ErrInvalidAccessToken, http.StatusBadRequest},
		{entity.ErrInvalidRefreshToken, http.StatusBadRequest},
	} {
		if errors.Is(err, known.err) {
			return known.status, newErrorResponse(known.err.Error())
		}
	}

	return http.StatusInternalServerError, serverErrorResponse
}

func (h *tokenHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := tokenErrorStatus(err)
	if status == http.StatusInternalServerError || status == http.StatusBadRequest {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}

func (h *tokenHandler) issueRefreshToken(w http.ResponseWriter, r *http.Request) {
	rt, err := h.useCase.IssueRefreshToken(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toRefreshTokenResponse(rt))
}

func (h *tokenHandler) validateRefreshToken(w http.ResponseWriter, r *http.Request) {
	rt, err := h.useCase.RefreshTokenByToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toRefreshTokenResponse(rt))
}

func (h *tokenHandler) issueAccessToken(w http.ResponseWriter, r *http.Request) {
	var req accessTokenRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	at, err := h.useCase.IssueAccessToken(r.Context(), req.RefreshTokenID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toAccessTokenResponse(at))
}

func (h *tokenHandler) validateAccessToken(w http.ResponseWriter, r *http.Request) {
	at, err := h.useCase.AccessTokenByToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toAccessTokenResponse(at))
}
