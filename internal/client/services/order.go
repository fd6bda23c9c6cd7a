package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/vidmarkt/internal/client/client"
	"github.com/dmitrijs2005/vidmarkt/internal/client/forms"
	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
	"github.com/dmitrijs2005/vidmarkt/internal/client/session"
)

var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrPaymentDeclined = errors.New("payment declined")
)

// OrderService submits purchases for the logged-in user.
type OrderService interface {
	Checkout(ctx context.Context, media *models.Media, form forms.PaymentForm) (*models.OrderResponse, error)
}

type orderService struct {
	client client.Client
	store  session.Store
}

func NewOrderService(client client.Client, store session.Store) OrderService {
	return &orderService{client: client, store: store}
}

// Checkout buys media at its listed price. The card number is sent without
// spaces. A response with isSuccess=false is returned together with
// ErrPaymentDeclined.
func (o *orderService) Checkout(ctx context.Context, media *models.Media, form forms.PaymentForm) (*models.OrderResponse, error) {
	s, err := o.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("session loading error: %w", err)
	}
	if s == nil {
		return nil, ErrNotLoggedIn
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}

	req := models.OrderRequest{
		Amount:         media.Price.Float64(),
		CardHolderName: strings.TrimSpace(form.FullName),
		CardNumber:     forms.StripCardNumber(form.CardNumber),
		Expiration:     strings.TrimSpace(form.Expiration),
		CVC:            strings.TrimSpace(form.CVC),
		User:           models.OrderUser{ID: s.User.ID},
		Medias:         []models.OrderMedia{{ID: media.ID}},
	}

	resp, err := o.client.PlaceOrder(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("order error: %w", err)
	}
	if !resp.IsSuccess {
		return resp, ErrPaymentDeclined
	}
	return resp, nil
}
