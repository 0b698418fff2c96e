package handlers

import (
	"net/http"

	"luxebeauty/middleware"
	"luxebeauty/services/flow"
	"luxebeauty/services/location"
	"luxebeauty/services/user"

	"github.com/gin-gonic/gin"
)

// FlowHandler evaluates the onboarding gates and completes them.
type FlowHandler struct {
	Users    user.UserService
	Location location.Service
}

func NewFlowHandler(users user.UserService, loc location.Service) *FlowHandler {
	return &FlowHandler{Users: users, Location: loc}
}

// GetStage reports which top-level screen the client should show.
func (h *FlowHandler) GetStage(c *gin.Context) {
	userRec, err := h.Users.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stage": flow.Evaluate(*userRec)})
}

func (h *FlowHandler) CompleteSplash(c *gin.Context) {
	userRec, err := h.Users.CompleteSplash(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, userRec)
}

func (h *FlowHandler) CompleteOnboarding(c *gin.Context) {
	userRec, err := h.Users.CompleteOnboarding(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, userRec)
}

// DetectLocation runs the fallback chain with whatever the client supplied
// (optional coordinates, else the caller's IP) and records the resolved
// city. Detection cannot fail; the chain bottoms out at the default city.
func (h *FlowHandler) DetectLocation(c *gin.Context) {
	var req location.DetectRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
	}
	req.IP = middleware.GetClientIP(c)

	city := h.Location.Detect(c.Request.Context(), req)
	userRec, err := h.Users.CompleteLocationDetection(c.Request.Context(), city)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"city": city, "user": userRec})
}
