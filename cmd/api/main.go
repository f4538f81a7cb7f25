package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/paasword/paasword-go/internal/config"
	"github.com/paasword/paasword-go/internal/crypto"
	"github.com/paasword/paasword-go/internal/handler"
	"github.com/paasword/paasword-go/internal/middleware"
	"github.com/paasword/paasword-go/internal/service"
)

func main() {
	issueToken := flag.String("issue-token", "", "print an access token for the named client and exit")
	tokenTTL := flag.Duration("token-ttl", 0, "lifetime of issued tokens (0 = no expiry)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.ValidateServer(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if *issueToken != "" {
		if !cfg.AuthEnabled() {
			slog.Error("JWT_SECRET is required to issue tokens")
			os.Exit(1)
		}
		token, err := crypto.GenerateToken(*issueToken, cfg.JWTSecret, *tokenTTL)
		if err != nil {
			slog.Error("issuing token failed", "error", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "auth", cfg.AuthEnabled())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func newRouter(cfg config.Config) http.Handler {
	genService := service.NewGeneratorService(nil)
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.AuthEnabled() {
			r.Use(middleware.TokenAuth(cfg.JWTSecret))
		}

		r.Get("/presets", genHandler.HandleListPresets)
		r.Get("/presets/{key}", genHandler.HandleGetPreset)
		r.Post("/strength", genHandler.HandleStrength)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
			r.Post("/generate", genHandler.HandleGenerate)
		})
	})

	return r
}
