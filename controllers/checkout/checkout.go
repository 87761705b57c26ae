package checkoutControllers

import (
	"math"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
)

type CheckoutItem struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

type CheckoutInput struct {
	Items []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

// CreateCheckoutSession builds a Stripe Checkout session for the submitted
// cart: card payment in euros, fixed 4.90 € standard shipping to France, and
// returns the hosted payment page URL. Prices are the cart's snapshot; Stripe
// is the one showing and charging them.
//
// POST /api/checkout/session
func CreateCheckoutSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart"})
			return
		}

		lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(input.Items))
		for _, item := range input.Items {
			quantity := item.Quantity
			if quantity < 1 {
				quantity = 1
			}
			lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyEUR)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(item.Name),
					},
					UnitAmount: stripe.Int64(int64(math.Round(item.Price * 100))),
				},
				Quantity: stripe.Int64(quantity),
			})
		}

		params := &stripe.CheckoutSessionParams{
			Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
			LineItems:          lineItems,
			Locale:             stripe.String("fr"),
			SuccessURL:         stripe.String(envDefault("CHECKOUT_SUCCESS_URL", "http://localhost:5173/success")),
			CancelURL:          stripe.String(envDefault("CHECKOUT_CANCEL_URL", "http://localhost:5173")),
			ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
				AllowedCountries: stripe.StringSlice([]string{"FR"}),
			},
			ShippingOptions: []*stripe.CheckoutSessionShippingOptionParams{
				{
					ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
						Type: stripe.String("fixed_amount"),
						FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
							Amount:   stripe.Int64(490),
							Currency: stripe.String(string(stripe.CurrencyEUR)),
						},
						DisplayName: stripe.String("Livraison standard"),
						DeliveryEstimate: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateParams{
							Minimum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMinimumParams{
								Unit:  stripe.String("business_day"),
								Value: stripe.Int64(2),
							},
							Maximum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMaximumParams{
								Unit:  stripe.String("business_day"),
								Value: stripe.Int64(4),
							},
						},
					},
				},
			},
		}

		sess, err := checkoutsession.New(params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": sess.URL})
	}
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
