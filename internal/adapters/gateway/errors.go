package gateway

import (
	"net/http"

	apperrors "github.com/AbdelhakNemri/sports-arena-client/internal/errors"
)

// classify wraps an APIError in the application error taxonomy so callers
// branch on error codes instead of raw HTTP statuses. The APIError stays in
// the chain for errors.As and StatusOf.
func classify(apiErr *APIError) error {
	switch {
	case apiErr.Status == 0:
		return apperrors.Network("gateway unreachable", apiErr)
	case apiErr.Status == http.StatusUnauthorized:
		return apperrors.Wrap(apiErr, apperrors.ErrCodeUnauthorized, "not authenticated")
	case apiErr.Status == http.StatusForbidden:
		return apperrors.Wrap(apiErr, apperrors.ErrCodeForbidden, "not allowed")
	case apiErr.Status == http.StatusNotFound:
		return apperrors.Wrap(apiErr, apperrors.ErrCodeNotFound, "not found")
	case apiErr.Status == http.StatusRequestTimeout || apiErr.Status == http.StatusGatewayTimeout:
		return apperrors.Wrap(apiErr, apperrors.ErrCodeTimeout, "gateway timeout")
	case apiErr.Status < http.StatusInternalServerError:
		return apperrors.Wrap(apiErr, apperrors.ErrCodeValidation, "request rejected")
	default:
		return apperrors.Wrap(apiErr, apperrors.ErrCodeInternal, "gateway failure")
	}
}

// ClassifyError exposes the taxonomy mapping for adapters that build
// APIError values outside this client, such as the direct-grant exchanger.
func ClassifyError(apiErr *APIError) error {
	return classify(apiErr)
}
