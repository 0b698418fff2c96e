package booking

import (
	"context"
	"time"

	"luxebeauty/database/repository"
	"luxebeauty/models"
	"luxebeauty/services/catalog"

	"github.com/go-redis/redis/v8"
)

// DraftService manages the single in-progress booking draft across the
// wizard steps, prices it, and converts it into a persisted booking on
// payment confirmation.
type DraftService interface {
	GetDraft(ctx context.Context) (*models.BookingDraft, error)
	SetDraftFields(ctx context.Context, update models.DraftUpdate) (*models.BookingDraft, error)
	ResetDraft(ctx context.Context) error

	// EnterStep centrally checks the step's preconditions against the
	// current draft and returns it, or a GuardError with a redirect.
	EnterStep(ctx context.Context, step Step) (*models.BookingDraft, error)

	ApplyPromo(ctx context.Context, code string) (*models.BookingDraft, error)
	RemovePromo(ctx context.Context) (*models.BookingDraft, error)
	Quote(ctx context.Context) (*models.Quote, error)

	ConfirmBooking(ctx context.Context, email, method string) (*models.Booking, *models.Invoice, error)
}

// DefaultDraftService implements DraftService with the draft held in Redis.
type DefaultDraftService struct {
	Cache       *redis.Client
	Catalog     catalog.Service
	BookingRepo repository.BookingRepository
	Payments    PaymentProcessor
	DraftTTL    time.Duration
}
