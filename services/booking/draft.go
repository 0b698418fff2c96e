// File: booking/draft.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"luxebeauty/models"

	"github.com/go-redis/redis/v8"
)

// DraftKey is the fixed Redis key holding the in-progress booking draft.
const DraftKey = "luxe_draft"

// GetDraft returns the current draft, defaulting to the empty draft when
// none is stored or the previous one expired.
func (s *DefaultDraftService) GetDraft(ctx context.Context) (*models.BookingDraft, error) {
	data, err := s.Cache.Get(ctx, DraftKey).Result()
	if err == redis.Nil {
		return &models.BookingDraft{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

// SetDraftFields shallow-merges the update into the current draft and saves
// it. No step precondition is enforced here; guards run on step entry.
func (s *DefaultDraftService) SetDraftFields(ctx context.Context, update models.DraftUpdate) (*models.BookingDraft, error) {
	draft, err := s.GetDraft(ctx)
	if err != nil {
		return nil, err
	}
	update.ApplyTo(draft)
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ResetDraft restores the default empty draft. Invoked after a booking has
// been persisted.
func (s *DefaultDraftService) ResetDraft(ctx context.Context) error {
	if err := s.Cache.Del(ctx, DraftKey).Err(); err != nil {
		return fmt.Errorf("failed to reset booking draft: %w", err)
	}
	return nil
}

// EnterStep applies the central step guard and returns the draft on success.
func (s *DefaultDraftService) EnterStep(ctx context.Context, step Step) (*models.BookingDraft, error) {
	draft, err := s.GetDraft(ctx)
	if err != nil {
		return nil, err
	}
	if err := CheckEntry(step, *draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *DefaultDraftService) saveDraft(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.Cache.Set(ctx, DraftKey, data, s.DraftTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}
