package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tasteofindiazambia/backend/pkg/resp"
	"github.com/tasteofindiazambia/backend/services"
)

// handleServiceError maps service failures onto the HTTP surface.
// Business-rule failures get specific messages, anything else a 500.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrMenuItemUnavailable),
		errors.Is(err, services.ErrOutOfRadius),
		errors.Is(err, services.ErrBelowMinimumOrder),
		errors.Is(err, services.ErrInvalidTransition):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrReservationNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
