package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/InMan-Labs/inman-website/internal/config"
	"github.com/InMan-Labs/inman-website/internal/contact"
	"github.com/InMan-Labs/inman-website/internal/handlers"
	"github.com/InMan-Labs/inman-website/pkg/logger"
)

func serve(ctx context.Context, log *slog.Logger, envFile string) error {
	cfg, err := config.Load(log, envFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dedup, closeDedup := newDedupStore(ctx, cfg, log)
	defer closeDedup()

	svc, err := newContactService(cfg, dedup, log)
	if err != nil {
		return err
	}

	limiter := handlers.NewRateLimiter(cfg.Contact.FormRatePerMinute, cfg.Contact.FormRateBurst)
	defer limiter.Stop()

	router, err := newRouter(handlers.New(svc, log), limiter)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("addr", "http://localhost"+cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		log.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("server exited")
	return nil
}

func newRouter(h *handlers.Handler, limiter *handlers.RateLimiter) (http.Handler, error) {
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to access static files: %w", err)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	r.Get("/", h.Landing)
	r.Get("/product", h.Product)
	r.Get("/demo", h.Demo)
	r.Get("/api/roi", h.ROI)
	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Post("/demo", h.SubmitDemo)
		r.Post("/contact", h.SubmitContact)
	})

	return r, nil
}

func newContactService(cfg *config.Config, dedup contact.DedupStore, log *slog.Logger) (*contact.Service, error) {
	templates, err := contact.NewTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	// Keep the interface nil when Mailgun is off so Submit falls back to mailto.
	var sender contact.Sender
	if mg := contact.NewMailgunSender(&cfg.Email, log); mg != nil {
		sender = mg
	} else {
		log.Info("mailgun not configured, demo requests will use mailto links")
	}

	return contact.NewService(cfg.Contact.Recipient, sender, templates, dedup, cfg.Contact.DedupWindow, log), nil
}

func newDedupStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (contact.DedupStore, func()) {
	if !cfg.Redis.IsConfigured() {
		return contact.NewMemoryDedupStore(), func() {}
	}

	store := contact.NewRedisDedupStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		log.Warn("redis unreachable, using in-memory dedup", slog.String("addr", cfg.Redis.Addr), logger.Error(err))
		_ = store.Close()
		return contact.NewMemoryDedupStore(), func() {}
	}

	log.Info("using redis for demo request dedup", slog.String("addr", cfg.Redis.Addr))
	return store, func() { _ = store.Close() }
}
