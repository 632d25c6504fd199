package payment

import (
	"context"
	"fmt"
	"math"

	bookingRepo "lenslink/database/repository/booking"
	"lenslink/models"
	"lenslink/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// PaymentService creates payment intents for booking balances.
type PaymentService interface {
	CreateIntent(ctx context.Context, bookingID, clientID string) (*IntentResult, error)
}

// IntentResult carries what the client needs to complete payment.
type IntentResult struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	Amount          float64 `json:"amount"`
}

// StripePaymentService is the production implementation.
type StripePaymentService struct {
	Bookings bookingRepo.BookingRepository
}

// CreateIntent creates a Stripe PaymentIntent for the booking's total
// amount and records its ID on the booking.
func (s *StripePaymentService) CreateIntent(ctx context.Context, bookingID, clientID string) (*IntentResult, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if b.ClientID != clientID {
		return nil, fmt.Errorf("booking %s does not belong to client %s", bookingID, clientID)
	}
	if b.PaymentStatus == models.PaymentPaid {
		return nil, fmt.Errorf("booking %s is already paid", bookingID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(b.TotalAmount * 100))),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Metadata: map[string]string{
			"bookingId": b.ID,
			"clientId":  b.ClientID,
		},
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	if err := s.Bookings.UpdateWithDocument(b.ID, bson.M{"paymentIntentId": pi.ID}); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("payment intent created",
		zap.String("bookingID", b.ID),
		zap.String("paymentIntentID", pi.ID))

	return &IntentResult{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		Amount:          b.TotalAmount,
	}, nil
}
