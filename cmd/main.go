package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"mailauth/internal/api"
	"mailauth/internal/auth"
	"mailauth/internal/config"
	"mailauth/internal/database"
	"mailauth/internal/mailer"
	"mailauth/internal/store"
)

func init() {
	// Load environment variables from .env file.
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Create a context for initialization.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Initialization error: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from DB: %v", err)
		}
	}()

	userCol, err := database.UserCollection(ctx, client, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Error preparing users collection: %v", err)
	}

	users := store.NewUsers(userCol)
	sender := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SenderEmail)
	svc := auth.NewService(users, sender, []byte(cfg.JWTSecret))

	// Create a new Gorilla Mux router and register the API endpoints.
	router := mux.NewRouter()
	api.NewServer(svc).Routes(router)

	// Credentialed CORS for the frontend origin, plus request logging.
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.FrontendOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowCredentials(),
	)
	loggedRouter := handlers.LoggingHandler(os.Stdout, cors(router))

	addr := ":" + cfg.Port

	// Create the HTTP server.
	srv := &http.Server{
		Handler:      loggedRouter,
		Addr:         addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine.
	go func() {
		log.Printf("Server running on http://localhost%s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signals for graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting gracefully.")
}
