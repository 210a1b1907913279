package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"

	"rehearsal-service/internal/config"
	availabilityGet "rehearsal-service/internal/http-server/handlers/availability/get"
	catalogGenerate "rehearsal-service/internal/http-server/handlers/catalog/generate"
	conflictsReport "rehearsal-service/internal/http-server/handlers/conflicts/report"
	constraintsCheck "rehearsal-service/internal/http-server/handlers/constraints/check"
	constraintsValidate "rehearsal-service/internal/http-server/handlers/constraints/validate"
	dancesSet "rehearsal-service/internal/http-server/handlers/dances/set"
	peopleGet "rehearsal-service/internal/http-server/handlers/people/get"
	peopleSet "rehearsal-service/internal/http-server/handlers/people/set"
	rosterValidate "rehearsal-service/internal/http-server/handlers/roster/validate"
	slotCreate "rehearsal-service/internal/http-server/handlers/slots/create"
	slotGet "rehearsal-service/internal/http-server/handlers/slots/get"
	"rehearsal-service/internal/lock"
	svc "rehearsal-service/internal/service"
	"rehearsal-service/internal/storage/postgres"
	slogpretty "rehearsal-service/pkg/handlers/slogPretty"
	"rehearsal-service/pkg/middleware/mwLogger"
	"rehearsal-service/pkg/sl"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting API", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.New(cfg.StoragePath)
	if err != nil {
		log.Error("Failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	locker, err := lock.NewRedisLock(cfg.RedisAddr)
	if err != nil {
		log.Error("Failed to init redis lock", sl.Err(err))
		os.Exit(1)
	}

	service := svc.NewService(storage, locker)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwLogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(CORS)

	// Constraints
	router.Post("/constraints/check", constraintsCheck.New(log, service))
	router.Post("/constraints/validate", constraintsValidate.New(log))

	// Roster
	router.Post("/people", peopleSet.New(log, service))
	router.Get("/people", peopleGet.New(log, service))
	router.Get("/people/{id}", peopleGet.New(log, service))
	router.Get("/roster/validate", rosterValidate.New(log, service))

	// Venue slots
	router.Post("/venue_slots", slotCreate.New(log, service))
	router.Get("/venue_slots", slotGet.New(log, service))
	router.Get("/venue_slots/{id}", slotGet.New(log, service))

	// Dances
	router.Post("/dances", dancesSet.New(log, service))

	// Scheduling
	router.Get("/conflicts/report", conflictsReport.New(log, service))
	router.Get("/availability", availabilityGet.New(log, service))
	router.Post("/catalog/generate", catalogGenerate.New(log, service))

	serv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	serverErrCh := make(chan error, 1)

	go func() {
		log.Info("Starting HTTP server", slog.String("addr", cfg.Address))
		if err := serv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		} else {
			serverErrCh <- nil
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErrCh:
		if err != nil {
			log.Error("HTTP server stopped unexpectedly", sl.Err(err))
		} else {
			log.Info("HTTP server stopped gracefully")
		}
	}

	shutdownTimeout := cfg.HTTPServer.ShutdownTimeout

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down HTTP server", slog.String("timeout", shutdownTimeout.String()))

	if err := serv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", sl.Err(err))
	} else {
		log.Info("Server shutdown complete")
	}

	if storage != nil {
		if err := storage.Close(); err != nil {
			log.Error("Failed to close storage", sl.Err(err))
		} else {
			log.Info("Storage closed")
		}
	}

	if locker != nil {
		if err := locker.Close(); err != nil {
			log.Error("Failed to close locker", sl.Err(err))
		} else {
			log.Info("Locker closed")
		}
	}

	log.Info("Shutdown finished, server stopped")

}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
