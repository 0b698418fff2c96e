package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"luxebeauty/database/repository"
	"luxebeauty/services/booking"
	"luxebeauty/services/catalog"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	drafts := &booking.DefaultDraftService{
		Cache:       client,
		Catalog:     catalog.NewDefaultCatalogService(),
		BookingRepo: repository.NewRedisBookingRepo(client),
		Payments:    booking.NewSimulatedPaymentProcessor(zap.NewNop(), 0),
		DraftTTL:    time.Minute,
	}
	h := NewBookingHandler(drafts, zap.NewNop())

	r := gin.New()
	r.GET("/api/booking/draft", h.GetDraft)
	r.PATCH("/api/booking/draft", h.UpdateDraft)
	r.GET("/api/booking/steps/:step", h.EnterStep)
	r.POST("/api/booking/draft/promo", h.ApplyPromo)
	r.POST("/api/booking/confirm", h.Confirm)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStepGuardRedirectsToCatalog(t *testing.T) {
	r := newTestRouter(t)

	// Service chosen, artist not: the date/time step must answer with a
	// redirect, never the step payload.
	w := doJSON(r, http.MethodPatch, "/api/booking/draft", `{"serviceId":"2"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/booking/steps/datetime", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/services", resp.Redirect)
}

func TestInvalidPromoCode(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/booking/draft/promo", `{"code":"BOGUS99"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not valid")
}

func TestConfirmFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPatch, "/api/booking/draft",
		`{"serviceId":"2","artistId":"3","date":"Mon, 6 Jan","time":"10:00 AM"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/booking/confirm", `{"method":"card"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Booking struct {
			Status string `json:"status"`
			Total  int    `json:"total"`
		} `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "upcoming", resp.Booking.Status)
	assert.Equal(t, 4130, resp.Booking.Total)

	// the draft is reset after a confirmed booking
	w = doJSON(r, http.MethodGet, "/api/booking/draft", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"serviceId":""`)
}
