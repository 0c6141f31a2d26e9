package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"nailstudio/internal/api"
	"nailstudio/internal/auth"
	"nailstudio/internal/db"
	"nailstudio/internal/repository"
	"nailstudio/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	database, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.InitSchema(database); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	appointmentRepo := repository.NewAppointmentRepository(database)
	serviceRepo := repository.NewServiceRepository(database)
	galleryRepo := repository.NewGalleryRepository(database)
	reviewRepo := repository.NewReviewRepository(database)
	settingsRepo := repository.NewSettingsRepository(database)
	adminAuthRepo := repository.NewAdminAuthRepository(database)
	jobRepo := repository.NewJobRepository(database)

	senderSvc := service.NewSenderService()
	availabilitySvc := service.NewAvailabilityService(serviceRepo, appointmentRepo)
	appointmentSvc := service.NewAppointmentService(appointmentRepo, availabilitySvc, senderSvc)
	catalogSvc := service.NewCatalogService(serviceRepo)
	gallerySvc := service.NewGalleryService(galleryRepo)
	reviewSvc := service.NewReviewService(reviewRepo)
	settingsSvc := service.NewSettingsService(settingsRepo)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)
	jobSvc := service.NewJobService(jobRepo, senderSvc)

	availabilityHandler := api.NewAvailabilityHandler(availabilitySvc)
	appointmentHandler := api.NewAppointmentHandler(appointmentSvc)
	catalogHandler := api.NewCatalogHandler(catalogSvc)
	galleryHandler := api.NewGalleryHandler(gallerySvc)
	reviewHandler := api.NewReviewHandler(reviewSvc)
	settingsHandler := api.NewSettingsHandler(settingsSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/available-slots", availabilityHandler.GetAvailableSlots).Methods("GET")
	r.HandleFunc("/api/appointments", appointmentHandler.CreateAppointment).Methods("POST")
	r.HandleFunc("/api/services", catalogHandler.ListServices).Methods("GET")
	r.HandleFunc("/api/services/{id}", catalogHandler.GetService).Methods("GET")
	r.HandleFunc("/api/gallery", galleryHandler.ListGalleryItems).Methods("GET")
	r.HandleFunc("/api/reviews", reviewHandler.ListReviews).Methods("GET")
	r.HandleFunc("/api/reviews", reviewHandler.SubmitReview).Methods("POST")
	r.HandleFunc("/api/auth/login", adminAuthHandler.Login).Methods("POST")

	me := r.PathPrefix("/api/auth/me").Subrouter()
	me.Use(auth.AdminAuthMiddleware)
	me.HandleFunc("", adminAuthHandler.Me).Methods("GET")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/appointments", appointmentHandler.ListAppointments).Methods("GET")
	admin.HandleFunc("/appointments/{id}", appointmentHandler.GetAppointment).Methods("GET")
	admin.HandleFunc("/appointments/{id}", appointmentHandler.UpdateAppointment).Methods("PATCH")
	admin.HandleFunc("/appointments/{id}", appointmentHandler.DeleteAppointment).Methods("DELETE")
	admin.HandleFunc("/services", catalogHandler.CreateService).Methods("POST")
	admin.HandleFunc("/services", catalogHandler.BulkDeleteServices).Methods("DELETE")
	admin.HandleFunc("/services/{id}", catalogHandler.UpdateService).Methods("PATCH")
	admin.HandleFunc("/services/{id}", catalogHandler.DeleteService).Methods("DELETE")
	admin.HandleFunc("/gallery", galleryHandler.ListGalleryItems).Methods("GET")
	admin.HandleFunc("/gallery", galleryHandler.CreateGalleryItem).Methods("POST")
	admin.HandleFunc("/gallery", galleryHandler.BulkDeleteGalleryItems).Methods("DELETE")
	admin.HandleFunc("/gallery/{id}", galleryHandler.UpdateGalleryItem).Methods("PATCH")
	admin.HandleFunc("/gallery/{id}", galleryHandler.DeleteGalleryItem).Methods("DELETE")
	admin.HandleFunc("/reviews", reviewHandler.ListReviews).Methods("GET")
	admin.HandleFunc("/reviews/{id}", reviewHandler.GetReview).Methods("GET")
	admin.HandleFunc("/reviews/{id}", reviewHandler.UpdateReview).Methods("PATCH")
	admin.HandleFunc("/reviews/{id}", reviewHandler.DeleteReview).Methods("DELETE")
	admin.HandleFunc("/settings", settingsHandler.GetSettings).Methods("GET")
	admin.HandleFunc("/settings", settingsHandler.SaveSettings).Methods("PUT")
	admin.HandleFunc("/master", settingsHandler.GetMasterInfo).Methods("GET")
	admin.HandleFunc("/master", settingsHandler.SaveMasterInfo).Methods("PUT")
	admin.HandleFunc("/auth/admins", adminAuthHandler.CreateAdmin).Methods("POST")

	c := cron.New()
	c.AddFunc("*/15 * * * *", func() {
		if err := jobSvc.UpdateCompletedAppointments(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.AddFunc("0 9 * * *", func() {
		if err := jobSvc.SendUpcomingReminders(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.AddFunc("0 3 * * *", func() {
		deleted, err := jobSvc.DeleteOldPendingAppointments(time.Now().AddDate(0, 0, -7))
		if err != nil {
			log.Printf("Cron Job error: %v", err)
			return
		}
		if deleted > 0 {
			log.Printf("Cron Job: deleted %d stale pending appointments", deleted)
		}
	})
	c.Start()
	defer c.Stop()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
