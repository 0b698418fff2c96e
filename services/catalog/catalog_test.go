package catalog

import (
	"testing"

	"luxebeauty/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookups(t *testing.T) {
	svc := NewDefaultCatalogService()

	t.Run("ServiceByID", func(t *testing.T) {
		s, ok := svc.ServiceByID("2")
		require.True(t, ok)
		assert.Equal(t, "Party Glam Look", s.Name)
		assert.Equal(t, 3500, s.Price)

		_, ok = svc.ServiceByID("999")
		assert.False(t, ok)
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		bridal := svc.Services("bridal")
		require.Len(t, bridal, 2)
		for _, s := range bridal {
			assert.Equal(t, "bridal", s.Category)
		}
		assert.Len(t, svc.Services("all"), 8)
		assert.Len(t, svc.Services(""), 8)
	})

	t.Run("OfferByCodeIsCaseInsensitive", func(t *testing.T) {
		upper, ok := svc.OfferByCode("LUXE20")
		require.True(t, ok)
		lower, ok := svc.OfferByCode("luxe20")
		require.True(t, ok)
		assert.Equal(t, upper, lower)

		_, ok = svc.OfferByCode("UNKNOWN")
		assert.False(t, ok)
	})

	t.Run("OfferDiscountKinds", func(t *testing.T) {
		luxe, ok := svc.OfferByCode("LUXE20")
		require.True(t, ok)
		assert.Equal(t, models.DiscountPercentage, luxe.Kind)
		assert.Equal(t, 700, luxe.DiscountOn(3500))

		bride, ok := svc.OfferByCode("BRIDE2000")
		require.True(t, ok)
		assert.Equal(t, models.DiscountAbsolute, bride.Kind)
		assert.Equal(t, 2000, bride.DiscountOn(2500))
		assert.Equal(t, 2000, bride.DiscountOn(15000))
	})

	t.Run("FixtureSizes", func(t *testing.T) {
		assert.Len(t, svc.Artists(), 4)
		assert.Len(t, svc.Offers(), 3)
		assert.Len(t, svc.Subscriptions(), 3)
		assert.Len(t, svc.Categories(), 7)
		assert.Len(t, svc.TimeSlots(), 18)
	})
}
