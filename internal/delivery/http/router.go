package http

import (
	"net/http"

	"clinic-scheduling-api/internal/delivery/http/handler"
	"clinic-scheduling-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	siteHandler         *handler.SiteHandler
	roomHandler         *handler.RoomHandler
	availabilityHandler *handler.AvailabilityHandler
	bookingHandler      *handler.BookingHandler
	recordHandler       *handler.ClinicalRecordHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	siteHandler *handler.SiteHandler,
	roomHandler *handler.RoomHandler,
	availabilityHandler *handler.AvailabilityHandler,
	bookingHandler *handler.BookingHandler,
	recordHandler *handler.ClinicalRecordHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		siteHandler:         siteHandler,
		roomHandler:         roomHandler,
		availabilityHandler: availabilityHandler,
		bookingHandler:      bookingHandler,
		recordHandler:       recordHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Sites and rooms (read for any authenticated user)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/sites", r.siteHandler.ListSites).Methods(http.MethodGet)
	protected.HandleFunc("/sites/{id}", r.siteHandler.GetSite).Methods(http.MethodGet)
	protected.HandleFunc("/rooms", r.roomHandler.ListRooms).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{id}", r.roomHandler.GetRoom).Methods(http.MethodGet)

	// Availability windows (read for any authenticated user)
	protected.HandleFunc("/availability-windows", r.availabilityHandler.ListWindows).Methods(http.MethodGet)
	protected.HandleFunc("/availability-windows/{id}", r.availabilityHandler.GetWindow).Methods(http.MethodGet)

	// Bookings (row-level access enforced in the usecase)
	protected.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", r.bookingHandler.ListBookings).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", r.bookingHandler.UpdateBooking).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id}/cancel", r.bookingHandler.CancelBooking).Methods(http.MethodPost)

	// Clinical records (role gate at the router, row-level gate in the usecase)
	records := api.PathPrefix("/clinical-records").Subrouter()
	records.Use(r.authMiddleware.Authenticate)
	records.HandleFunc("", r.recordHandler.ListRecords).Methods(http.MethodGet)
	records.HandleFunc("/{id}", r.recordHandler.GetRecord).Methods(http.MethodGet)

	recordsWrite := api.PathPrefix("/clinical-records").Subrouter()
	recordsWrite.Use(r.authMiddleware.Authenticate)
	recordsWrite.Use(middleware.RequireAdminOrProfessional)
	recordsWrite.HandleFunc("", r.recordHandler.CreateRecord).Methods(http.MethodPost)
	recordsWrite.HandleFunc("/{id}", r.recordHandler.UpdateRecord).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// User management (admin)
	admin.HandleFunc("/users", r.authHandler.CreateUser).Methods(http.MethodPost)

	// Site and room management (admin)
	admin.HandleFunc("/sites", r.siteHandler.CreateSite).Methods(http.MethodPost)
	admin.HandleFunc("/sites/{id}", r.siteHandler.UpdateSite).Methods(http.MethodPut)
	admin.HandleFunc("/rooms", r.roomHandler.CreateRoom).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{id}", r.roomHandler.UpdateRoom).Methods(http.MethodPut)

	// Availability window management (admin)
	admin.HandleFunc("/availability-windows", r.availabilityHandler.CreateWindow).Methods(http.MethodPost)
	admin.HandleFunc("/availability-windows/{id}", r.availabilityHandler.UpdateWindow).Methods(http.MethodPut)
	admin.HandleFunc("/availability-windows/{id}/deactivate", r.availabilityHandler.DeactivateWindow).Methods(http.MethodPost)
	admin.HandleFunc("/availability-windows/{id}", r.availabilityHandler.DeleteWindow).Methods(http.MethodDelete)

	// Clinical record removal (admin)
	admin.HandleFunc("/clinical-records/{id}", r.recordHandler.DeleteRecord).Methods(http.MethodDelete)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
