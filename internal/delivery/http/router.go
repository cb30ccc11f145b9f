package http

import (
	"net/http"

	"healthhub-backend/internal/delivery/http/handler"
	"healthhub-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                 *mux.Router
	authHandler            *handler.AuthHandler
	doctorHandler          *handler.DoctorHandler
	appointmentHandler     *handler.AppointmentHandler
	healthRecordHandler    *handler.HealthRecordHandler
	symptomAnalysisHandler *handler.SymptomAnalysisHandler
	authMiddleware         *middleware.AuthMiddleware
	corsMiddleware         *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	healthRecordHandler *handler.HealthRecordHandler,
	symptomAnalysisHandler *handler.SymptomAnalysisHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                 mux.NewRouter(),
		authHandler:            authHandler,
		doctorHandler:          doctorHandler,
		appointmentHandler:     appointmentHandler,
		healthRecordHandler:    healthRecordHandler,
		symptomAnalysisHandler: symptomAnalysisHandler,
		authMiddleware:         authMiddleware,
		corsMiddleware:         corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

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
	authProtected.HandleFunc("/user", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/user", r.authHandler.UpdateUser).Methods(http.MethodPatch)

	// Doctor directory (anonymous browsing allowed)
	doctorsPublic := api.PathPrefix("/doctors").Subrouter()
	doctorsPublic.Use(r.authMiddleware.OptionalAuthenticate)
	doctorsPublic.HandleFunc("", r.doctorHandler.Search).Methods(http.MethodGet)
	doctorsPublic.HandleFunc("/{id:[0-9]+}", r.doctorHandler.GetByID).Methods(http.MethodGet)

	// Doctor profile management (protected)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("", r.doctorHandler.CreateProfile).Methods(http.MethodPost)
	doctors.HandleFunc("/profile/{userId}", r.doctorHandler.GetByUserID).Methods(http.MethodGet)
	doctors.HandleFunc("/{id:[0-9]+}", r.doctorHandler.UpdateProfile).Methods(http.MethodPatch)

	// Appointments (protected)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("/{id:[0-9]+}", r.appointmentHandler.Get).Methods(http.MethodGet)
	appointments.HandleFunc("/{id:[0-9]+}", r.appointmentHandler.Update).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id:[0-9]+}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)

	// Health records (protected)
	healthRecords := api.PathPrefix("/health-records").Subrouter()
	healthRecords.Use(r.authMiddleware.Authenticate)
	healthRecords.HandleFunc("", r.healthRecordHandler.Create).Methods(http.MethodPost)
	healthRecords.HandleFunc("", r.healthRecordHandler.List).Methods(http.MethodGet)
	healthRecords.HandleFunc("/{id:[0-9]+}", r.healthRecordHandler.Get).Methods(http.MethodGet)
	healthRecords.HandleFunc("/{id:[0-9]+}", r.healthRecordHandler.Update).Methods(http.MethodPatch)

	// Symptom analysis (protected)
	symptomAnalysis := api.PathPrefix("/symptom-analysis").Subrouter()
	symptomAnalysis.Use(r.authMiddleware.Authenticate)
	symptomAnalysis.HandleFunc("", r.symptomAnalysisHandler.Create).Methods(http.MethodPost)
	symptomAnalysis.HandleFunc("", r.symptomAnalysisHandler.List).Methods(http.MethodGet)
	symptomAnalysis.HandleFunc("/{id:[0-9]+}", r.symptomAnalysisHandler.Get).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
