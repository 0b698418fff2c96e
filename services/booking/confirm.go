package booking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"luxebeauty/models"

	"go.uber.org/zap"
)

// ConfirmBooking finalizes the draft: it checks the payment step guard,
// prices the draft, charges via the configured processor, persists the
// booking record most-recent-first, and resets the draft.
//
// The booking ID is the creation timestamp in milliseconds, so a rapid
// double submit can collide. Status starts as upcoming and is never
// advanced afterwards.
func (s *DefaultDraftService) ConfirmBooking(ctx context.Context, email, method string) (*models.Booking, *models.Invoice, error) {
	draft, err := s.GetDraft(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := CheckEntry(StepPayment, *draft); err != nil {
		return nil, nil, err
	}

	quote := ComputeQuote(s.draftSubtotal(draft), draft.Discount)

	invoice, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		Email:    email,
		Amount:   quote.Total,
		Currency: "INR",
		Method:   method,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("payment failed: %w", err)
	}

	record := models.Booking{
		ID:        strconv.FormatInt(time.Now().UnixMilli(), 10),
		ServiceID: draft.ServiceID,
		ArtistID:  draft.ArtistID,
		Date:      draft.Date,
		Time:      draft.Time,
		Status:    models.BookingStatusUpcoming,
		Total:     quote.Total,
	}
	if err := s.BookingRepo.Add(ctx, record); err != nil {
		return nil, nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if err := s.ResetDraft(ctx); err != nil {
		return nil, nil, err
	}

	zap.L().Info("booking confirmed",
		zap.String("booking", record.ID),
		zap.String("service", record.ServiceID),
		zap.Int("total", record.Total))
	return &record, invoice, nil
}
