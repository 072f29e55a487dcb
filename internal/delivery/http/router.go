package http

import (
	"net/http"

	"bloodlink/internal/delivery/http/handler"
	"bloodlink/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	donorHandler    *handler.DonorHandler
	alertHandler    *handler.AlertHandler
	hospitalHandler *handler.HospitalHandler
	requestHandler  *handler.BloodRequestHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	donorHandler *handler.DonorHandler,
	alertHandler *handler.AlertHandler,
	hospitalHandler *handler.HospitalHandler,
	requestHandler *handler.BloodRequestHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		donorHandler:    donorHandler,
		alertHandler:    alertHandler,
		hospitalHandler: hospitalHandler,
		requestHandler:  requestHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/donor", r.authHandler.RegisterDonor).Methods(http.MethodPost)
	auth.HandleFunc("/register/hospital", r.authHandler.RegisterHospital).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Blood requests (public, submitted by anyone in need)
	api.HandleFunc("/requests", r.requestHandler.CreateRequest).Methods(http.MethodPost)
	api.HandleFunc("/requests", r.requestHandler.ListRequests).Methods(http.MethodGet)

	// Donor directory (public, filterable)
	api.HandleFunc("/donors", r.donorHandler.ListDonors).Methods(http.MethodGet)
	api.HandleFunc("/donors/{id}", r.donorHandler.GetDonor).Methods(http.MethodGet)

	// Donor routes (protected - donor only, self only)
	donors := api.PathPrefix("/donors").Subrouter()
	donors.Use(r.authMiddleware.Authenticate)
	donors.Use(middleware.RequireDonor)
	donors.HandleFunc("/{id}", r.donorHandler.UpdateProfile).Methods(http.MethodPut)
	donors.HandleFunc("/{id}/alerts", r.alertHandler.GetAlerts).Methods(http.MethodGet)
	donors.HandleFunc("/{id}/responses", r.alertHandler.RespondToRequest).Methods(http.MethodPost)

	// Hospital routes (protected; availability writes are hospital only)
	hospitals := api.PathPrefix("/hospitals").Subrouter()
	hospitals.Use(r.authMiddleware.Authenticate)
	hospitals.HandleFunc("/{id}", r.hospitalHandler.GetHospital).Methods(http.MethodGet)
	hospitals.Handle("/{id}/availability",
		middleware.RequireHospital(http.HandlerFunc(r.hospitalHandler.UpdateAvailability))).Methods(http.MethodPut)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
