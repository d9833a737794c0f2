package http

import (
	"net/http"

	"binfresh/internal/delivery/http/handler"
	"binfresh/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	bookingHandler       *handler.BookingHandler
	abandonedFormHandler *handler.AbandonedFormHandler
	serviceAreaHandler   *handler.ServiceAreaHandler
	maintenanceHandler   *handler.MaintenanceHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	requestLogger        *middleware.RequestLogger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	abandonedFormHandler *handler.AbandonedFormHandler,
	serviceAreaHandler *handler.ServiceAreaHandler,
	maintenanceHandler *handler.MaintenanceHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestLogger *middleware.RequestLogger,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		bookingHandler:       bookingHandler,
		abandonedFormHandler: abandonedFormHandler,
		serviceAreaHandler:   serviceAreaHandler,
		maintenanceHandler:   maintenanceHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		requestLogger:        requestLogger,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Customer-facing routes (public)
	api.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/abandoned-forms", r.abandonedFormHandler.CaptureForm).Methods(http.MethodPost)
	api.HandleFunc("/service-areas/check", r.serviceAreaHandler.CheckPostcode).Methods(http.MethodGet)

	// Staff routes (protected)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)

	// Booking management
	admin.HandleFunc("/bookings", r.bookingHandler.ListBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", r.bookingHandler.UpdateBooking).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{id}", r.bookingHandler.DeleteBooking).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{id}/status", r.bookingHandler.UpdateBookingStatus).Methods(http.MethodPatch)

	// Abandoned-form follow-up
	admin.HandleFunc("/abandoned-forms", r.abandonedFormHandler.ListForms).Methods(http.MethodGet)
	admin.HandleFunc("/abandoned-forms/{id}/status", r.abandonedFormHandler.UpdateFormStatus).Methods(http.MethodPatch)

	// Service-area management
	admin.HandleFunc("/service-areas", r.serviceAreaHandler.CreateArea).Methods(http.MethodPost)
	admin.HandleFunc("/service-areas", r.serviceAreaHandler.ListAreas).Methods(http.MethodGet)
	admin.HandleFunc("/service-areas/{id}", r.serviceAreaHandler.UpdateArea).Methods(http.MethodPut)
	admin.HandleFunc("/service-areas/{id}", r.serviceAreaHandler.DeleteArea).Methods(http.MethodDelete)

	// Administrative purge, gated behind the explicit clearAll flag
	admin.HandleFunc("/data", r.maintenanceHandler.PurgeData).Methods(http.MethodDelete)

	r.router.Use(r.requestLogger.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
