package http

import (
	"carwash-backend/internal/handlers"
	"carwash-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	carHandler *handlers.CarHandler,
	packageHandler *handlers.PackageHandler,
	serviceRecordHandler *handlers.ServiceRecordHandler,
	paymentHandler *handlers.PaymentHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestLogging)
	r.Use(middleware.MetricsMiddleware)

	// Health and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public API routes - Authentication
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Authenticated session routes
	sessionAPI := r.PathPrefix("/auth").Subrouter()
	sessionAPI.Use(authMiddleware.Authenticate)
	sessionAPI.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	sessionAPI.HandleFunc("/me", authHandler.Me).Methods("GET")

	// Protected API routes - Cars
	carsAPI := r.PathPrefix("/api/cars").Subrouter()
	carsAPI.Use(authMiddleware.Authenticate)
	carsAPI.HandleFunc("", carHandler.ListCars).Methods("GET")
	carsAPI.HandleFunc("", carHandler.CreateCar).Methods("POST")
	carsAPI.HandleFunc("/{id}", carHandler.GetCar).Methods("GET")
	carsAPI.HandleFunc("/{id}", carHandler.UpdateCar).Methods("PUT")
	carsAPI.HandleFunc("/{id}", carHandler.DeleteCar).Methods("DELETE")

	// Protected API routes - Packages
	packagesAPI := r.PathPrefix("/api/packages").Subrouter()
	packagesAPI.Use(authMiddleware.Authenticate)
	packagesAPI.HandleFunc("", packageHandler.ListPackages).Methods("GET")
	packagesAPI.HandleFunc("", packageHandler.CreatePackage).Methods("POST")
	packagesAPI.HandleFunc("/{id}", packageHandler.GetPackage).Methods("GET")
	packagesAPI.HandleFunc("/{id}", packageHandler.UpdatePackage).Methods("PUT")
	packagesAPI.HandleFunc("/{id}", packageHandler.DeletePackage).Methods("DELETE")

	// Protected API routes - Service Records
	servicesAPI := r.PathPrefix("/api/service-packages").Subrouter()
	servicesAPI.Use(authMiddleware.Authenticate)
	servicesAPI.HandleFunc("", serviceRecordHandler.ListRecords).Methods("GET")
	servicesAPI.HandleFunc("", serviceRecordHandler.CreateRecord).Methods("POST")
	servicesAPI.HandleFunc("/{id}", serviceRecordHandler.GetRecord).Methods("GET")
	servicesAPI.HandleFunc("/{id}", serviceRecordHandler.UpdateRecord).Methods("PUT")
	servicesAPI.HandleFunc("/{id}", serviceRecordHandler.DeleteRecord).Methods("DELETE")

	// Protected API routes - Payments and Bills
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.ListPayments).Methods("GET")
	paymentsAPI.HandleFunc("", paymentHandler.CreatePayment).Methods("POST")
	paymentsAPI.HandleFunc("/unpaid-services", paymentHandler.UnpaidServices).Methods("GET")
	paymentsAPI.HandleFunc("/bill/{serviceId}", paymentHandler.GetBill).Methods("GET")
	paymentsAPI.HandleFunc("/bill/{serviceId}/pdf", paymentHandler.GetBillPDF).Methods("GET")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.GetPayment).Methods("GET")

	// Protected API routes - Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/daily", reportHandler.Daily).Methods("GET")
	reportsAPI.HandleFunc("/daily/pdf", reportHandler.DailyPDF).Methods("GET")
	reportsAPI.HandleFunc("/summary", reportHandler.Summary).Methods("GET")

	return r
}
