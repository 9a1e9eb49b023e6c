package http

import (
	"errors"
	"net/http"

	"booking-dashboard/internal/scheduling"
	pkgErrors "booking-dashboard/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unrecognized (bind failures included) falls back to a 400.
func (h *handler) mapError(err error) error {
	var vErr *scheduling.ValidationError
	if errors.As(err, &vErr) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, vErr.Error())
	}

	switch {
	case errors.Is(err, scheduling.ErrSlotTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, scheduling.ErrSlotTaken.Error())
	case errors.Is(err, scheduling.ErrBookingNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, scheduling.ErrBookingNotFound.Error())
	case errors.Is(err, scheduling.ErrUpstreamUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, scheduling.ErrUpstreamUnavailable.Error())
	case errors.Is(err, scheduling.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, scheduling.ErrInvalidInput.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
