package booking

import (
	"context"
	"testing"
	"time"

	"luxebeauty/database/repository"
	"luxebeauty/models"
	"luxebeauty/services/catalog"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDraftService(t *testing.T) (*DefaultDraftService, *repository.RedisBookingRepo) {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	bookingRepo := repository.NewRedisBookingRepo(client)
	svc := &DefaultDraftService{
		Cache:       client,
		Catalog:     catalog.NewDefaultCatalogService(),
		BookingRepo: bookingRepo,
		Payments:    NewSimulatedPaymentProcessor(zap.NewNop(), 0),
		DraftTTL:    time.Minute,
	}
	return svc, bookingRepo
}

func str(s string) *string { return &s }

func TestDraftLifecycle(t *testing.T) {
	svc, _ := newTestDraftService(t)
	ctx := context.Background()

	t.Run("DefaultsToEmptyDraft", func(t *testing.T) {
		draft, err := svc.GetDraft(ctx)
		require.NoError(t, err)
		assert.True(t, draft.IsEmpty())
	})

	t.Run("SetFieldsShallowMerges", func(t *testing.T) {
		_, err := svc.SetDraftFields(ctx, models.DraftUpdate{ServiceID: str("2")})
		require.NoError(t, err)
		draft, err := svc.SetDraftFields(ctx, models.DraftUpdate{ArtistID: str("3")})
		require.NoError(t, err)
		assert.Equal(t, "2", draft.ServiceID)
		assert.Equal(t, "3", draft.ArtistID)
	})

	t.Run("ChangingServiceKeepsLaterFields", func(t *testing.T) {
		_, err := svc.SetDraftFields(ctx, models.DraftUpdate{Date: str("Mon, 6 Jan"), Time: str("10:00 AM")})
		require.NoError(t, err)
		draft, err := svc.SetDraftFields(ctx, models.DraftUpdate{ServiceID: str("1")})
		require.NoError(t, err)
		assert.Equal(t, "10:00 AM", draft.Time)
	})

	t.Run("ResetRestoresEmptyDraft", func(t *testing.T) {
		require.NoError(t, svc.ResetDraft(ctx))
		draft, err := svc.GetDraft(ctx)
		require.NoError(t, err)
		assert.True(t, draft.IsEmpty())
	})
}

func TestEnterStepGuards(t *testing.T) {
	svc, _ := newTestDraftService(t)
	ctx := context.Background()

	// Draft has a service but no artist: step 2 (date/time) must redirect
	// to the catalog, never render.
	_, err := svc.SetDraftFields(ctx, models.DraftUpdate{ServiceID: str("2")})
	require.NoError(t, err)

	_, err = svc.EnterStep(ctx, StepDateTimeSelect)
	ge, ok := AsGuardError(err)
	require.True(t, ok)
	assert.Equal(t, CatalogRedirect, ge.Redirect)
	assert.Contains(t, ge.Missing, "artist")

	_, err = svc.EnterStep(ctx, StepArtistSelect)
	assert.NoError(t, err)
}

func TestApplyPromo(t *testing.T) {
	ctx := context.Background()

	t.Run("PercentageOfCurrentSubtotal", func(t *testing.T) {
		svc, _ := newTestDraftService(t)
		_, err := svc.SetDraftFields(ctx, models.DraftUpdate{ServiceID: str("2")}) // ₹3500
		require.NoError(t, err)

		draft, err := svc.ApplyPromo(ctx, "LUXE20")
		require.NoError(t, err)
		assert.Equal(t, 700, draft.Discount)
		assert.Equal(t, "LUXE20", draft.PromoCode)
	})

	t.Run("CaseInsensitiveMatch", func(t *testing.T) {
		svc, _ := newTestDraftService(t)
		_, err := svc.SetDraftFields(ctx, models.DraftUpdate{ServiceID: str("2")})
		require.NoError(t, err)

		draft, err := svc.ApplyPromo(ctx, "luxe20")
		require.NoError(t, err)
		assert.Equal(t, 700, draft.Discount)
		// The stored code is the offer's canonical spelling.
		assert.Equal(t, "LUXE20", draft.PromoCode)
	})

	t.Run("AbsoluteAmountIgnoresPrice", func(t *testing.T) {
		svc, _ := newTestDraftService(t)
		_, err := svc.SetDraftFields(ctx, models.DraftUpdate{ServiceID: str("7")}) // ₹2500
		require.NoError(t, err)

		draft, err := svc.ApplyPromo(ctx, "BRIDE2000")
		require.NoError(t, err)
		assert.Equal(t, 2000, draft.Discount)
	})

	t.Run("UnknownCodeRejected", func(t *testing.T) {
		svc, _ := newTestDraftService(t)
		_, err := svc.ApplyPromo(ctx, "NOPE50")
		assert.ErrorIs(t, err, ErrInvalidPromoCode)
	})

	t.Run("RemovePromoClearsDiscount", func(t *testing.T) {
		svc, _ := newTestDraftService(t)
		_, err := svc.SetDraftFields(ctx, models.DraftUpdate{ServiceID: str("2")})
		require.NoError(t, err)
		_, err = svc.ApplyPromo(ctx, "LUXE20")
		require.NoError(t, err)

		draft, err := svc.RemovePromo(ctx)
		require.NoError(t, err)
		assert.Zero(t, draft.Discount)
		assert.Empty(t, draft.PromoCode)
	})
}

func TestQuote(t *testing.T) {
	svc, _ := newTestDraftService(t)
	ctx := context.Background()

	// Service "2" (₹3500) with artist "3" and no promo: 3500 + 630 = 4130.
	_, err := svc.SetDraftFields(ctx, models.DraftUpdate{ServiceID: str("2"), ArtistID: str("3")})
	require.NoError(t, err)

	quote, err := svc.Quote(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3500, quote.Subtotal)
	assert.Equal(t, 630, quote.Tax)
	assert.Equal(t, 4130, quote.Total)
}

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("PersistsRecordAndResetsDraft", func(t *testing.T) {
		svc, bookingRepo := newTestDraftService(t)
		_, err := svc.SetDraftFields(ctx, models.DraftUpdate{
			ServiceID: str("2"),
			ArtistID:  str("3"),
			Date:      str("Mon, 6 Jan"),
			Time:      str("10:00 AM"),
		})
		require.NoError(t, err)

		record, invoice, err := svc.ConfirmBooking(ctx, "priya@example.com", "card")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusUpcoming, record.Status)
		assert.Equal(t, 4130, record.Total)
		assert.Equal(t, "paid", invoice.Status)

		bookings, err := bookingRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, record.ID, bookings[0].ID)

		draft, err := svc.GetDraft(ctx)
		require.NoError(t, err)
		assert.True(t, draft.IsEmpty())
	})

	t.Run("RejectedWithoutService", func(t *testing.T) {
		svc, _ := newTestDraftService(t)
		_, _, err := svc.ConfirmBooking(ctx, "priya@example.com", "card")
		_, ok := AsGuardError(err)
		assert.True(t, ok)
	})

	t.Run("NewBookingsArePrepended", func(t *testing.T) {
		svc, bookingRepo := newTestDraftService(t)

		_, err := svc.SetDraftFields(ctx, models.DraftUpdate{ServiceID: str("1")})
		require.NoError(t, err)
		first, _, err := svc.ConfirmBooking(ctx, "priya@example.com", "card")
		require.NoError(t, err)

		time.Sleep(2 * time.Millisecond) // distinct timestamp IDs

		_, err = svc.SetDraftFields(ctx, models.DraftUpdate{ServiceID: str("2")})
		require.NoError(t, err)
		second, _, err := svc.ConfirmBooking(ctx, "priya@example.com", "card")
		require.NoError(t, err)

		bookings, err := bookingRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, bookings, 2)
		assert.Equal(t, second.ID, bookings[0].ID)
		assert.Equal(t, first.ID, bookings[1].ID)
	})
}
