package handlers

// HandlerBundle aggregates all HTTP handlers for route registration.
type HandlerBundle struct {
	Catalog *CatalogHandler
	User    *UserHandler
	Booking *BookingHandler
	Flow    *FlowHandler
}
