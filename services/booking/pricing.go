package booking

import (
	"context"
	"math"

	"luxebeauty/models"
)

// TaxRate is the GST rate applied to every service subtotal.
const TaxRate = 0.18

// ComputeQuote derives the price breakdown from a service subtotal and an
// already-computed discount amount. Tax is rounded to the nearest whole
// currency unit. The total is clamped at zero so an oversized discount can
// never produce a negative charge; the raw discount is kept on the quote.
func ComputeQuote(subtotal, discount int) models.Quote {
	tax := int(math.Round(float64(subtotal) * TaxRate))
	total := subtotal + tax - discount
	if total < 0 {
		total = 0
	}
	return models.Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    total,
	}
}

// Quote prices the current draft. A draft without a selected service prices
// at zero.
func (s *DefaultDraftService) Quote(ctx context.Context) (*models.Quote, error) {
	draft, err := s.GetDraft(ctx)
	if err != nil {
		return nil, err
	}
	quote := ComputeQuote(s.draftSubtotal(draft), draft.Discount)
	return &quote, nil
}

// draftSubtotal resolves the draft's service against the catalog; a missing
// or unset service contributes nothing.
func (s *DefaultDraftService) draftSubtotal(draft *models.BookingDraft) int {
	if draft.ServiceID == "" {
		return 0
	}
	svc, ok := s.Catalog.ServiceByID(draft.ServiceID)
	if !ok {
		return 0
	}
	return svc.Price
}
