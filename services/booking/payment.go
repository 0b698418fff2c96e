package booking

import (
	"context"
	"fmt"
	"time"

	"luxebeauty/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentProcessor charges a booking total. Implementations may be real or
// simulated; call sites never know the difference.
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// SimulatedPaymentProcessor waits a fixed delay and always succeeds. This is
// the default processor; the contract is that it cannot fail.
type SimulatedPaymentProcessor struct {
	Logger *zap.Logger
	Delay  time.Duration
}

func NewSimulatedPaymentProcessor(logger *zap.Logger, delay time.Duration) *SimulatedPaymentProcessor {
	return &SimulatedPaymentProcessor{Logger: logger, Delay: delay}
}

func (p *SimulatedPaymentProcessor) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	time.Sleep(p.Delay) // simulate processing

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		PaymentID: "pi_" + uuid.New().String(),
		Email:     req.Email,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "paid",
		CreatedAt: time.Now(),
	}
	p.Logger.Info("Simulated payment successful",
		zap.String("invoice", inv.InvoiceID),
		zap.Int("amount", inv.Amount))
	return inv, nil
}

// StripePaymentProcessor creates a PaymentIntent for the booking total.
// Selected with PAYMENT_PROVIDER=stripe.
type StripePaymentProcessor struct {
	Logger *zap.Logger
}

func NewStripePaymentProcessor(logger *zap.Logger) *StripePaymentProcessor {
	return &StripePaymentProcessor{Logger: logger}
}

func (p *StripePaymentProcessor) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		// Stripe amounts are in the currency's smallest unit.
		Amount:   stripe.Int64(int64(req.Amount) * 100),
		Currency: stripe.String(string(stripe.CurrencyINR)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		PaymentID: pi.ID,
		Email:     req.Email,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "paid",
		CreatedAt: time.Now(),
	}
	p.Logger.Info("Stripe payment intent created",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID))
	return inv, nil
}
