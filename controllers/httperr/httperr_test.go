package httperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/junaidrashid-git/paintstore-api/backendclient"
	"github.com/junaidrashid-git/paintstore-api/catalog"
	"github.com/junaidrashid-git/paintstore-api/order"
	"github.com/junaidrashid-git/paintstore-api/session"
	"github.com/junaidrashid-git/paintstore-api/store"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{fmt.Errorf("%w: qty", store.ErrInvalidQuantity), http.StatusBadRequest},
		{store.ErrInvalidStep, http.StatusBadRequest},
		{session.ErrInvalidSession, http.StatusUnauthorized},
		{fmt.Errorf("%w: X", catalog.ErrUnknownPromo), http.StatusNotFound},
		{catalog.ErrUnknownShippingOption, http.StatusNotFound},
		{catalog.ErrPromoExpired, http.StatusConflict},
		{catalog.ErrPromoExhausted, http.StatusConflict},
		{order.ErrEmptyCart, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: billing", order.ErrCheckoutIncomplete), http.StatusUnprocessableEntity},
		{fmt.Errorf("place order: %w", order.ErrPaymentDeclined), http.StatusPaymentRequired},
		{&backendclient.Error{Status: http.StatusNotFound}, http.StatusNotFound},
		{&backendclient.Error{Status: http.StatusInternalServerError}, http.StatusBadGateway},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Status(tt.err), "%v", tt.err)
	}
}
