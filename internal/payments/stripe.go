package payments

import (
	"context"
	"errors"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Countries we ship to.
var shippingCountries = []string{"GB", "US", "AE", "NL", "NG", "DE", "FR", "IT", "ES"}

// StripeClient implements Provider against the Stripe Checkout API.
type StripeClient struct {
	sc          *client.API
	frontendURL string
}

func NewStripeClient(secretKey, frontendURL string) *StripeClient {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeClient{sc: sc, frontendURL: frontendURL}
}

func (c *StripeClient) CreateSession(ctx context.Context, p CreateSessionParams) (*Session, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(p.Items))
	for _, it := range p.Items {
		pd := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:     stripe.String(it.Name),
			Metadata: map[string]string{"product_id": it.ProductID},
		}
		if it.Description != "" {
			pd.Description = stripe.String(it.Description)
		}
		if it.ImageURL != "" {
			pd.Images = stripe.StringSlice([]string{it.ImageURL})
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(stripe.CurrencyGBP)),
				UnitAmount:  stripe.Int64(it.UnitPence),
				ProductData: pd,
			},
			Quantity: stripe.Int64(it.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(c.frontendURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(c.frontendURL + "/cart"),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(shippingCountries),
		},
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
	}
	params.Context = ctx
	if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}
	if len(p.CustomConfig) > 0 {
		params.AddMetadata("custom_config", string(p.CustomConfig))
	}

	s, err := c.sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}
	return fromStripe(s), nil
}

func (c *StripeClient) GetSession(ctx context.Context, id string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := c.sc.CheckoutSessions.Get(id, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return fromStripe(s), nil
}

func fromStripe(s *stripe.CheckoutSession) *Session {
	out := &Session{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
	}
	if s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	return out
}
