package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"fleethr/internal/config"
	"fleethr/internal/db"
	"fleethr/internal/domain/advance"
	"fleethr/internal/domain/identity"
	"fleethr/internal/domain/notifications"
	"fleethr/internal/domain/payout"
	"fleethr/internal/domain/payslip"
	"fleethr/internal/domain/reports"
	"fleethr/internal/transport/http/middleware"

	advancehandler "fleethr/internal/transport/http/handlers/advance"
	authhandler "fleethr/internal/transport/http/handlers/auth"
	identityhandler "fleethr/internal/transport/http/handlers/identity"
	notificationshandler "fleethr/internal/transport/http/handlers/notifications"
	payouthandler "fleethr/internal/transport/http/handlers/payout"
	paysliphandler "fleethr/internal/transport/http/handlers/payslip"
	reportshandler "fleethr/internal/transport/http/handlers/reports"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if err := db.Seed(ctx, pool, cfg); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	identityStore := identity.NewStore(pool)
	identitySvc := identity.NewService(identityStore, identity.NewOTPStore(cfg.OTPTTL))

	notificationsSvc := notifications.New(notifications.NewStore(pool))

	reportsSvc := reports.NewService(identityStore, reports.NewStore(pool), notificationsSvc)

	advanceStore := advance.NewStore(pool)
	advanceSvc := advance.NewService(advanceStore, notificationsSvc)

	payoutSvc := payout.NewService(identityStore, payout.NewStore(pool), advanceStore, notificationsSvc)

	payslipSvc := payslip.NewService(identityStore, payslip.NewStore(pool),
		payslip.NewPDFRenderer(cfg.PayslipDir), notificationsSvc)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(identitySvc, cfg.JWTSecret).RegisterRoutes(r)
		identityhandler.NewHandler(identitySvc).RegisterRoutes(r)
		reportshandler.NewHandler(reportsSvc, cfg.MaxUploadBytes).RegisterRoutes(r)
		payouthandler.NewHandler(payoutSvc, cfg.MaxUploadBytes).RegisterRoutes(r)
		paysliphandler.NewHandler(payslipSvc, cfg.MaxUploadBytes).RegisterRoutes(r)
		advancehandler.NewHandler(advanceSvc).RegisterRoutes(r)
		notificationshandler.NewHandler(notificationsSvc).RegisterRoutes(r)
	})

	log.Printf("fleethr server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
