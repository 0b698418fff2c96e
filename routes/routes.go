package routes

import (
	"net/http"
	"time"

	"luxebeauty/handlers"
	"luxebeauty/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/services/:id", hb.Catalog.GetService)
		api.GET("/artists", hb.Catalog.ListArtists)
		api.GET("/artists/:id", hb.Catalog.GetArtist)
		api.GET("/offers", hb.Catalog.ListOffers)
		api.GET("/subscriptions", hb.Catalog.ListSubscriptions)
		api.GET("/categories", hb.Catalog.ListCategories)
		api.GET("/timeslots", hb.Catalog.ListTimeSlots)
	}
}

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/signup", hb.User.Signup)
		api.POST("/login", hb.User.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.User.Me)
		api.PATCH("/me", hb.User.UpdateMe)
		api.POST("/logout", hb.User.Logout)
		api.GET("/favorites", hb.User.ListFavorites)
		api.POST("/favorites/:serviceId", hb.User.ToggleFavorite)
		api.GET("/bookings", hb.User.ListBookings)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.GET("/draft", hb.Booking.GetDraft)
		bookingGroup.PATCH("/draft", hb.Booking.UpdateDraft)
		bookingGroup.DELETE("/draft", hb.Booking.ResetDraft)
		bookingGroup.GET("/steps/:step", hb.Booking.EnterStep)
		bookingGroup.POST("/draft/promo", hb.Booking.ApplyPromo)
		bookingGroup.DELETE("/draft/promo", hb.Booking.RemovePromo)
		bookingGroup.GET("/draft/quote", hb.Booking.GetQuote)
		bookingGroup.POST("/confirm", hb.Booking.Confirm)
	}
}

// RegisterFlowRoutes registers the onboarding gate endpoints.
func RegisterFlowRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/flow")
	{
		api.GET("/stage", hb.Flow.GetStage)
		api.POST("/splash", hb.Flow.CompleteSplash)
		api.POST("/onboarding", hb.Flow.CompleteOnboarding)
		api.POST("/location", hb.Flow.DetectLocation)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Luxe"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterFlowRoutes(r, hb)
	RegisterHealthRoute(r)
}
