package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kulturboden/api/internal/config"
	"github.com/kulturboden/api/internal/handler"
	"github.com/kulturboden/api/internal/mail"
	"github.com/kulturboden/api/internal/repository"
	"github.com/kulturboden/api/internal/service"
	"github.com/kulturboden/api/internal/store"
	"github.com/kulturboden/api/pkg/token"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Select the store backend once, at startup.
	var st store.Store
	if cfg.Store.UseHosted() {
		surreal := store.NewSurrealStore(store.SurrealConfig{
			URL:       cfg.Store.KVURL,
			User:      cfg.Store.KVUser,
			Password:  cfg.Store.KVPassword,
			Namespace: cfg.Store.KVNamespace,
			Database:  cfg.Store.KVDatabase,
		})
		if err := surreal.Connect(ctx); err != nil {
			slog.Error("failed to connect to hosted store", slog.String("error", err.Error()))
			os.Exit(1)
		}
		st = surreal
		slog.Info("using hosted key-value store", slog.String("url", cfg.Store.KVURL))
	} else {
		fileStore, err := store.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			slog.Error("failed to open data directory", slog.String("error", err.Error()))
			os.Exit(1)
		}
		st = fileStore
		slog.Info("using local file store", slog.String("dir", cfg.Store.DataDir))
	}
	defer func() { _ = st.Close() }()

	// Initialize the session token service
	tokens, err := token.NewService(token.Config{
		Secret:     []byte(cfg.Auth.SessionSecret),
		Issuer:     cfg.Auth.Issuer,
		Expiration: cfg.Auth.SessionTTL,
	})
	if err != nil {
		slog.Error("failed to initialize token service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	events := repository.NewEvents(st)
	reservations := repository.NewReservations(st)
	contacts := repository.NewContacts(st)
	vouchers := repository.NewVouchers(st)
	memberships := repository.NewMemberships(st)
	sponsors := repository.NewSponsors(st)
	subscribers := repository.NewSubscribers(st)
	issues := repository.NewIssues(st)
	pages := repository.NewPages(st)
	settings := repository.NewSettings(st)
	testimonials := repository.NewTestimonials(st)
	gallery := repository.NewGallery(st)
	admins := repository.NewAdmins(st)

	// Initialize the mail sender; without a provider key mails are logged
	// and dropped, which keeps local development working offline.
	var sender mail.Sender
	if cfg.Mail.Enabled() {
		sender = mail.NewResendSender(cfg.Mail.ResendAPIKey, cfg.Mail.FromAddress)
	} else {
		sender = mail.NewNoopSender()
		slog.Warn("no mail provider configured, outbound mail is disabled")
	}

	// Initialize services
	authService := service.NewAuthService(admins, tokens)
	eventService := service.NewEventService(events, reservations)
	reservationService := service.NewReservationService(reservations, events)
	notifier := service.NewNotifier(sender, cfg.Mail.AdminAddress, cfg.Site.Name)
	newsletterService := service.NewNewsletterService(issues, subscribers, events, sender,
		cfg.Site.BaseURL, cfg.Site.Name)

	// Seed the initial admin when the collection is empty
	if err := authService.Seed(ctx, cfg.Auth.SeedUsername, cfg.Auth.SeedPassword); err != nil {
		slog.Error("failed to seed admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := handler.NewRouter(handler.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Data:         handler.NewDataHandler(authService, contacts, vouchers, memberships, sponsors, subscribers, issues, pages, settings, testimonials, gallery),
		Events:       handler.NewEventsHandler(events),
		Reservations: handler.NewReservationsHandler(reservations, reservationService),
		Send:         handler.NewSendHandler(contacts, memberships, vouchers, reservationService, notifier),
		Newsletter:   handler.NewNewsletterHandler(newsletterService, subscribers),
		Pages:        handler.NewPagesHandler(eventService, pages, settings, testimonials, gallery),
		Health:       handler.NewHealthHandler(st),

		Validator:      authService,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Graceful shutdown on SIGINT/SIGTERM
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.String("version", handler.Version),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	<-shutdown
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
	slog.Info("server stopped")
}
