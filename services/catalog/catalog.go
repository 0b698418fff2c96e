package catalog

import (
	"strings"

	"luxebeauty/models"
)

// Service exposes the static read-only catalog: services, artists, offers,
// subscription plans, categories, and time slots.
type Service interface {
	Services(category string) []models.Service
	ServiceByID(id string) (*models.Service, bool)
	Artists() []models.Artist
	ArtistByID(id string) (*models.Artist, bool)
	Offers() []models.Offer
	OfferByCode(code string) (*models.Offer, bool)
	Subscriptions() []models.Subscription
	Categories() []models.Category
	TimeSlots() []string
}

// DefaultCatalogService serves the built-in fixtures.
type DefaultCatalogService struct {
	services      []models.Service
	artists       []models.Artist
	offers        []models.Offer
	subscriptions []models.Subscription
	categories    []models.Category
	timeSlots     []string
}

func NewDefaultCatalogService() *DefaultCatalogService {
	return &DefaultCatalogService{
		services:      services,
		artists:       artists,
		offers:        offers,
		subscriptions: subscriptions,
		categories:    categories,
		timeSlots:     timeSlots,
	}
}

// Services returns all services, or only those in the given category.
// The "all" category matches everything.
func (s *DefaultCatalogService) Services(category string) []models.Service {
	if category == "" || category == "all" {
		return s.services
	}
	var filtered []models.Service
	for _, svc := range s.services {
		if svc.Category == category {
			filtered = append(filtered, svc)
		}
	}
	return filtered
}

func (s *DefaultCatalogService) ServiceByID(id string) (*models.Service, bool) {
	for i := range s.services {
		if s.services[i].ID == id {
			return &s.services[i], true
		}
	}
	return nil, false
}

func (s *DefaultCatalogService) Artists() []models.Artist {
	return s.artists
}

func (s *DefaultCatalogService) ArtistByID(id string) (*models.Artist, bool) {
	for i := range s.artists {
		if s.artists[i].ID == id {
			return &s.artists[i], true
		}
	}
	return nil, false
}

func (s *DefaultCatalogService) Offers() []models.Offer {
	return s.offers
}

// OfferByCode matches a user-entered promo code case-insensitively.
func (s *DefaultCatalogService) OfferByCode(code string) (*models.Offer, bool) {
	for i := range s.offers {
		if strings.EqualFold(s.offers[i].Code, code) {
			return &s.offers[i], true
		}
	}
	return nil, false
}

func (s *DefaultCatalogService) Subscriptions() []models.Subscription {
	return s.subscriptions
}

func (s *DefaultCatalogService) Categories() []models.Category {
	return s.categories
}

func (s *DefaultCatalogService) TimeSlots() []string {
	return s.timeSlots
}
