package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aurora-studio/site-api/internal/auth"
	"github.com/aurora-studio/site-api/internal/config"
	"github.com/aurora-studio/site-api/internal/contacts"
	"github.com/aurora-studio/site-api/internal/db"
	"github.com/aurora-studio/site-api/internal/handlers"
	"github.com/aurora-studio/site-api/internal/middleware"
	"github.com/aurora-studio/site-api/internal/models"
	"github.com/aurora-studio/site-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	dbConn, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer dbConn.Close()

	if err := db.Migrate(context.Background(), dbConn, cfg); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	ttl, err := time.ParseDuration(cfg.JWTTTL)
	if err != nil {
		logger.Fatal("parse JWT_TTL", zap.Error(err))
	}
	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, ttl)
	if err != nil {
		logger.Fatal("token issuer", zap.Error(err))
	}

	authSvc := auth.NewService(store.NewUserStore(dbConn))
	contactSvc := contacts.NewService(store.NewContactStore(dbConn))

	h := handlers.NewHandler(authSvc, contactSvc, issuer, logger)

	r := chi.NewRouter()

	// Public
	r.Post("/api/register", h.Auth.Register)
	r.Post("/api/login", h.Auth.Login)
	r.Post("/api/contact", h.Contacts.Submit)

	// Admin-gated: role is re-verified from the token on every call
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticator(issuer))
		r.Use(middleware.RequireRole(models.RoleAdmin))

		r.Get("/api/admin/contacts", h.Contacts.List)
		r.Get("/api/admin/contacts/{id}", h.Contacts.GetByID)
		r.Put("/api/contacts/{id}", h.Contacts.Rename)
		r.Delete("/api/contacts/{id}", h.Contacts.Delete)
	})

	// Static front end
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
