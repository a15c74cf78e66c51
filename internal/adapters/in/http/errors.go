package http

import (
	"errors"
	"net/http"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/services"
	"medmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON error body. Kind is a stable machine-readable
// discriminator; the two 409 variants are told apart by it.
type errorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// writeError maps a domain error to its HTTP representation.
func writeError(ctx echo.Context, err error) error {
	status, kind := classify(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Opaque failures never leak internals to clients.
		message = "internal error"
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Kind:    kind,
		Message: message,
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrNoSellerAvailable):
		return http.StatusConflict, "no_seller_available"
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, errs.ErrDuplicateIdentity):
		return http.StatusConflict, "duplicate_identity"
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, "invalid_transition"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		return http.StatusBadRequest, "bad_request"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
