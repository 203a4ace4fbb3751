// Package httperr maps domain errors onto HTTP responses.
package httperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/backendclient"
	"github.com/junaidrashid-git/paintstore-api/catalog"
	"github.com/junaidrashid-git/paintstore-api/order"
	"github.com/junaidrashid-git/paintstore-api/session"
	"github.com/junaidrashid-git/paintstore-api/store"
)

func Status(err error) int {
	var backendErr *backendclient.Error
	switch {
	case err == nil:
		return http.StatusOK

	case store.IsValidation(err):
		return http.StatusBadRequest

	case errors.Is(err, session.ErrInvalidSession):
		return http.StatusUnauthorized

	case errors.Is(err, catalog.ErrUnknownPromo),
		errors.Is(err, catalog.ErrUnknownShippingOption):
		return http.StatusNotFound

	case errors.Is(err, catalog.ErrPromoExpired),
		errors.Is(err, catalog.ErrPromoExhausted):
		return http.StatusConflict

	case errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrCheckoutIncomplete):
		return http.StatusUnprocessableEntity

	case errors.Is(err, order.ErrPaymentDeclined):
		return http.StatusPaymentRequired

	case errors.As(err, &backendErr):
		if backendErr.Status == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	default:
		return http.StatusInternalServerError
	}
}

// Abort writes {"error": msg} with the status for err. Internal errors are
// not echoed to the client.
func Abort(c *gin.Context, err error) {
	status := Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
