package handlers

import (
	"errors"
	"net/http"

	"luxebeauty/middleware"
	"luxebeauty/models"
	"luxebeauty/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking draft wizard and payment confirmation.
type BookingHandler struct {
	Drafts booking.DraftService
	Logger *zap.Logger
}

func NewBookingHandler(drafts booking.DraftService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Drafts: drafts, Logger: logger}
}

func (h *BookingHandler) GetDraft(c *gin.Context) {
	draft, err := h.Drafts.GetDraft(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// UpdateDraft shallow-merges partial fields into the draft.
func (h *BookingHandler) UpdateDraft(c *gin.Context) {
	var update models.DraftUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Drafts.SetDraftFields(c.Request.Context(), update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *BookingHandler) ResetDraft(c *gin.Context) {
	if err := h.Drafts.ResetDraft(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// EnterStep runs the central step guard. A precondition failure answers 409
// with the redirect target instead of the step payload.
func (h *BookingHandler) EnterStep(c *gin.Context) {
	step, err := booking.ParseStep(c.Param("step"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown booking step"})
		return
	}

	draft, err := h.Drafts.EnterStep(c.Request.Context(), step)
	if err != nil {
		if ge, ok := booking.AsGuardError(err); ok {
			h.Logger.Warn("step guard rejected entry",
				zap.String("step", string(ge.Step)),
				zap.Strings("missing", ge.Missing))
			c.JSON(http.StatusConflict, gin.H{
				"error":    ge.Error(),
				"redirect": ge.Redirect,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": step, "draft": draft})
}

func (h *BookingHandler) ApplyPromo(c *gin.Context) {
	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Drafts.ApplyPromo(c.Request.Context(), input.Code)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidPromoCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "This promo code is not valid"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *BookingHandler) RemovePromo(c *gin.Context) {
	draft, err := h.Drafts.RemovePromo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *BookingHandler) GetQuote(c *gin.Context) {
	quote, err := h.Drafts.Quote(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Confirm charges the draft total and persists the booking.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var input struct {
		Method string `json:"method"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Method == "" {
		input.Method = "card"
	}

	email := c.GetString(middleware.AuthEmailKey)
	record, invoice, err := h.Drafts.ConfirmBooking(c.Request.Context(), email, input.Method)
	if err != nil {
		if ge, ok := booking.AsGuardError(err); ok {
			c.JSON(http.StatusConflict, gin.H{"error": ge.Error(), "redirect": ge.Redirect})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record, "invoice": invoice})
}
