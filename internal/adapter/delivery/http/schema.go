package http

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/slug-shortener/internal/entity"
)

const statusError = "error"

// recordRequest represents the structure for a request to create or overwrite a record.
type recordRequest struct {
	Slug      string `json:"slug" validate:"required,max=255,slug"`
	URL       string `json:"url" validate:"required,http_url"`
	Overwrite bool   `json:"overwrite"`
}

// recordResponse represents the structure for a response containing a record.
type recordResponse struct {
	ID         int64      `json:"id"`
	Slug       string     `json:"slug"`
	URL        string     `json:"url"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
}

// toRecordResponse converts an entity.Record to a recordResponse.
func toRecordResponse(rec *entity.Record) recordResponse {
	return recordResponse{
		ID:         rec.ID,
		Slug:       rec.Slug,
		URL:        rec.URL,
		CreatedAt:  rec.CreatedAt,
		LastUsedAt: rec.LastUsedAt,
	}
}

// recordListResponse represents the structure for a response containing recently used records.
type recordListResponse struct {
	Records []recordResponse `json:"records"`
}

func toRecordListResponse(recs []*entity.Record) recordListResponse {
	resp := recordListResponse{Records: make([]recordResponse, 0, len(recs))}
	for _, rec := range recs {
		resp.Records = append(resp.Records, toRecordResponse(rec))
	}
	return resp
}

// accessTokenRequest represents the structure for a request to issue an access token.
type accessTokenRequest struct {
	RefreshTokenID int64 `json:"refresh_token_id" validate:"required,gt=0"`
}

type refreshTokenResponse struct {
	ID        int64     `json:"id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func toRefreshTokenResponse(rt *entity.RefreshToken) refreshTokenResponse {
	return refreshTokenResponse{
		ID:        rt.ID,
		Token:     rt.Token,
		ExpiresAt: rt.ExpiresAt,
		CreatedAt: rt.CreatedAt,
	}
}

type accessTokenResponse struct {
	ID             int64     `json:"id"`
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
	RefreshTokenID int64     `json:"refresh_token_id"`
}

func toAccessTokenResponse(at *entity.AccessToken) accessTokenResponse {
	return accessTokenResponse{
		ID:             at.ID,
		Token:          at.Token,
		ExpiresAt:      at.ExpiresAt,
		CreatedAt:      at.CreatedAt,
		RefreshTokenID: at.RefreshTokenID,
	}
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []validationError `json:"errors,omitempty"`
}

func newErrorResponse(msg string) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: msg,
	}
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse   = newErrorResponse("empty request body")
	invalidRequestBodyResponse = newErrorResponse("invalid request body")
	notFoundResponse           = newErrorResponse("not found")
	recordNotFoundResponse     = newErrorResponse(entity.ErrRecordNotFound.Error())
	recordExistsResponse       = newErrorResponse(entity.ErrRecordExists.Error())
	serverErrorResponse        = newErrorResponse("server error occurred")
)

// messageForTag returns a user-friendly message based on the validation tag.
func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "url", "http_url":
		return "invalid url"
	case "slug":
		return "only letters, digits, '-' and '_' are allowed"
	case "max":
		return "value is too long"
	case "gt":
		return "must be positive"
	default:
		return "invalid value"
	}
}

// getValidationErrors processes validation errors and returns a list of validationError.
func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

// validationErrorResponse constructs an errorResponse for validation errors.
func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}

func formatDatetime(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.DateTime)
	case *time.Time:
		if t != nil {
			return t.Format(time.DateTime)
		}
	}
	return ""
}
