package handlers

import (
	"net/http"

	"luxebeauty/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static read-only catalog.
type CatalogHandler struct {
	Catalog catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// ListServices returns all services, optionally filtered by ?category=.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	category := c.Query("category")
	c.JSON(http.StatusOK, gin.H{"services": h.Catalog.Services(category)})
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, ok := h.Catalog.ServiceByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) ListArtists(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"artists": h.Catalog.Artists()})
}

func (h *CatalogHandler) GetArtist(c *gin.Context) {
	artist, ok := h.Catalog.ArtistByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "artist not found"})
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *CatalogHandler) ListOffers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"offers": h.Catalog.Offers()})
}

func (h *CatalogHandler) ListSubscriptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subscriptions": h.Catalog.Subscriptions()})
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Catalog.Categories()})
}

func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": h.Catalog.TimeSlots()})
}
