package booking

import (
	"context"

	"luxebeauty/models"

	"go.uber.org/zap"
)

// ApplyPromo validates the entered code against the offer catalog and stores
// the resulting discount on the draft. Percentage offers are computed from
// the subtotal as it stands at apply time; a later service change does not
// recompute the stored discount. Offer validity dates and minimum order
// amounts are not checked here.
func (s *DefaultDraftService) ApplyPromo(ctx context.Context, code string) (*models.BookingDraft, error) {
	draft, err := s.GetDraft(ctx)
	if err != nil {
		return nil, err
	}

	offer, ok := s.Catalog.OfferByCode(code)
	if !ok {
		return nil, ErrInvalidPromoCode
	}

	discount := offer.DiscountOn(s.draftSubtotal(draft))
	draft.PromoCode = offer.Code
	draft.Discount = discount
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}

	zap.L().Info("promo applied",
		zap.String("code", offer.Code),
		zap.Int("discount", discount))
	return draft, nil
}

// RemovePromo clears the applied code and discount from the draft.
func (s *DefaultDraftService) RemovePromo(ctx context.Context) (*models.BookingDraft, error) {
	draft, err := s.GetDraft(ctx)
	if err != nil {
		return nil, err
	}
	draft.PromoCode = ""
	draft.Discount = 0
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}
