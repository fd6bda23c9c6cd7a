package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vidmarkt/internal/client/client"
	"github.com/dmitrijs2005/vidmarkt/internal/client/forms"
	"github.com/dmitrijs2005/vidmarkt/internal/client/pages"
	"github.com/dmitrijs2005/vidmarkt/internal/client/services"
	"github.com/dmitrijs2005/vidmarkt/internal/common"
)

var errPurchaseCancelled = errors.New("purchase cancelled")

// Buy purchases a media item. Logged-out users are sent through login first.
// The media is fetched to show what is being bought and at what price, then
// the card details are collected and the order is placed.
func (a *App) Buy(ctx context.Context, args []string) error {
	id, err := a.resourceID(args, "Enter media id")
	if err != nil {
		return err
	}

	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in to buy media")
		if err := a.Login(ctx); err != nil {
			return err
		}
	}

	page := pages.New("media", a.catalogService.Media, pages.RenderMedia, a.out, a.log)
	if err := page.Open(ctx, id); err != nil {
		return err
	}
	media := page.Data()

	form, err := a.readPaymentForm()
	if err != nil {
		return err
	}

	ok, err := getConfirmation(a.reader, "Pay "+pages.FormatPrice(media.Price)+"?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Purchase cancelled")
		return errPurchaseCancelled
	}

	resp, err := a.orderService.Checkout(ctx, media, form)
	switch {
	case err == nil:
		a.log.Info(ctx, "order placed", "order_id", resp.ID, "media_id", media.ID)
		fmt.Fprintln(a.out, "Payment successful!")
		if resp.ID != "" {
			fmt.Fprintf(a.out, "Order %s\n", resp.ID)
		}
		return nil
	case errors.Is(err, services.ErrPaymentDeclined):
		a.log.Warn(ctx, "payment declined", "media_id", media.ID)
		fmt.Fprintln(a.out, "Payment failed: the card was declined")
	case errors.Is(err, services.ErrNotLoggedIn), errors.Is(err, client.ErrUnauthorized):
		a.log.Warn(ctx, "order rejected", "media_id", media.ID, "error", err)
		fmt.Fprintln(a.out, "Payment failed: please log in again")
	default:
		a.report(ctx, "Payment", err)
	}
	return err
}

func (a *App) readPaymentForm() (forms.PaymentForm, error) {
	var f forms.PaymentForm
	var err error

	if f.FullName, err = getSimpleText(a.reader, "Full name on card", a.out); err != nil {
		return f, err
	}

	number, err := getPassword(a.out, "Card number")
	if err != nil {
		return f, err
	}
	defer common.WipeByteArray(number)
	f.CardNumber = forms.FormatCardNumber(string(number))
	fmt.Fprintf(a.out, "Card: %s\n", maskCard(f.CardNumber))

	if f.Expiration, err = getSimpleText(a.reader, "Expiration (MM/YY)", a.out); err != nil {
		return f, err
	}

	cvc, err := getPassword(a.out, "CVC")
	if err != nil {
		return f, err
	}
	defer common.WipeByteArray(cvc)
	f.CVC = string(cvc)

	return f, nil
}

// maskCard hides all but the last group of a formatted card number.
func maskCard(formatted string) string {
	masked := []byte(formatted)
	last := len(masked) - 4
	for i := range masked {
		if i < last && masked[i] != ' ' {
			masked[i] = '*'
		}
	}
	return string(masked)
}
