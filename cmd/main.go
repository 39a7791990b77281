package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/evgolabs/evpay/infra/config"
	"github.com/evgolabs/evpay/infra/conn"
	"github.com/evgolabs/evpay/infra/logger"
	"github.com/evgolabs/evpay/infra/middle"
	"github.com/evgolabs/evpay/infra/opensearch"
	"github.com/evgolabs/evpay/infra/response"
	"github.com/evgolabs/evpay/provider"
	"github.com/evgolabs/evpay/router"
)

var (
	openSearchLogger *opensearch.Logger
)

func init() {
	// Load Env
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize OpenSearch client and logger
	cfg := config.GetAppConfig()
	if cfg.EnableLogging {
		osClient, err := opensearch.NewClient(cfg)
		if err != nil {
			log.Printf("Failed to initialize OpenSearch client: %v", err)
			log.Println("Continuing without OpenSearch logging...")
		} else {
			openSearchLogger = opensearch.NewLogger(osClient)
			log.Println("OpenSearch logging initialized successfully")
		}
	} else {
		log.Println("OpenSearch logging is disabled")
	}

	logger.InitGlobalLogger(openSearchLogger)
}

func main() {
	cfg := config.GetAppConfig()

	// Audit database is optional; without it webhook and checkout activity
	// is only kept in memory.
	var auditor provider.AuditLogger
	if cfg.AuditDBPath != "" {
		db, err := conn.OpenSQLite(cfg.AuditDBPath)
		if err != nil {
			logger.Fatal("Failed to open audit database", err)
		}
		defer db.Close()

		auditor, err = provider.NewDBAuditLogger(db)
		if err != nil {
			logger.Fatal("Failed to initialize audit logger", err)
		}
		log.Printf("Audit logging enabled at %s", cfg.AuditDBPath)
	}

	// Initialize payment service with an isolated event store
	paymentService := provider.NewPaymentService(provider.NewEventStore(), auditor)

	providerConfig := config.NewProviderConfig()
	providerConfig.LoadFromEnv()

	for _, providerName := range providerConfig.GetAvailableProviders() {
		providerCfg, err := providerConfig.GetConfig(providerName)
		if err != nil {
			log.Printf("Failed to get configuration for provider %s: %v", providerName, err)
			continue
		}

		if err := paymentService.AddProvider(providerName, providerCfg); err != nil {
			log.Printf("Failed to register provider %s: %v", providerName, err)
			continue
		}

		log.Printf("Registered payment provider: %s", providerName)
	}

	if len(paymentService.ListProviders()) == 0 {
		log.Println("No payment providers configured!")
	}

	// Chi Define Routes
	r := chi.NewRouter()

	// Basic Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Security Middleware
	rateLimiter := middle.NewRateLimiter()
	r.Use(middle.SecurityHeadersMiddleware())
	r.Use(middle.IPWhitelistMiddleware())
	r.Use(middle.RateLimitMiddleware(rateLimiter))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Origin", "X-Requested-With"},
		ExposedHeaders:   []string{"Link", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           300, // Preflight cache time (second)
	}))

	router.Routes(r, paymentService, openSearchLogger)

	// Not Found
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = response.WriteJSON(w, http.StatusNotFound, response.Response{Success: false, Message: "Not Found"})
	})

	// Create a context that listens for interrupt and terminate signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 60 * time.Second,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(err.Error())
		}
	}()

	log.Println("API is running on", cfg.Port)

	// Block until a signal is received
	<-ctx.Done()

	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
