// File: luxebeauty/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"luxebeauty/config"
	"luxebeauty/database/repository"
	"luxebeauty/handlers"
	"luxebeauty/middleware"
	"luxebeauty/routes"
	"luxebeauty/services/booking"
	"luxebeauty/services/catalog"
	"luxebeauty/services/location"
	"luxebeauty/services/user"
	"luxebeauty/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitStore()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := repository.NewRedisUserRepo(utils.GetStoreClient())
	bookingRepo := repository.NewRedisBookingRepo(utils.GetStoreClient())
	favoritesRepo := repository.NewRedisFavoritesRepo(utils.GetStoreClient())

	// services.
	catalogService := catalog.NewDefaultCatalogService()

	userService := &user.DefaultUserService{
		Repo:          userRepo,
		BookingRepo:   bookingRepo,
		FavoritesRepo: favoritesRepo,
		Auth:          user.NewStubAuthProvider(time.Duration(config.AppConfig.AuthDelayMS) * time.Millisecond),
	}

	var paymentProcessor booking.PaymentProcessor
	if config.AppConfig.PaymentProvider == "stripe" {
		paymentProcessor = booking.NewStripePaymentProcessor(logger)
	} else {
		paymentProcessor = booking.NewSimulatedPaymentProcessor(logger, time.Duration(config.AppConfig.PaymentDelayMS)*time.Millisecond)
	}

	draftService := &booking.DefaultDraftService{
		Cache:       utils.GetSessionClient(),
		Catalog:     catalogService,
		BookingRepo: bookingRepo,
		Payments:    paymentProcessor,
		DraftTTL:    config.DraftTTL(),
	}

	geocodeTimeout := time.Duration(config.AppConfig.GeocodeTimeoutSecond) * time.Second
	locationService := &location.DefaultLocationService{
		Geocoder:    location.NewBigDataCloudGeocoder(geocodeTimeout),
		IPLookup:    location.NewIPAPILocator(geocodeTimeout),
		DefaultCity: config.AppConfig.DefaultCity,
		Logger:      logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog: handlers.NewCatalogHandler(catalogService),
		User:    handlers.NewUserHandler(userService),
		Booking: handlers.NewBookingHandler(draftService, logger),
		Flow:    handlers.NewFlowHandler(userService, locationService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
