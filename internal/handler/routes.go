package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kulturboden/api/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Data         *DataHandler
	Events       *EventsHandler
	Reservations *ReservationsHandler
	Send         *SendHandler
	Newsletter   *NewsletterHandler
	Pages        *PagesHandler
	Health       *HealthHandler

	Validator      middleware.SessionValidator
	AllowedOrigins []string
}

// NewRouter builds the HTTP routing table. Public routes: health, the pages
// surface, the unsubscribe page, the form submissions, auth, and the two
// public /data types (which gate themselves). The event and reservation
// admin surfaces and the issue send sit behind the session middleware.
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(h.AllowedOrigins))

	r.Get("/healthz", h.Health.Check)

	r.HandleFunc("/auth", h.Auth.Handle)
	r.HandleFunc("/data", h.Data.Handle)
	r.Get("/pages", h.Pages.Handle)
	r.Get("/newsletter/unsubscribe", h.Newsletter.Unsubscribe)

	r.Post("/send/contact", h.Send.Contact)
	r.Post("/send/membership", h.Send.Membership)
	r.Post("/send/voucher", h.Send.Voucher)
	r.Post("/send/reserve-tickets", h.Send.ReserveTickets)

	r.Group(func(g chi.Router) {
		g.Use(middleware.Session(h.Validator))

		g.Post("/send/newsletter-issue", h.Newsletter.SendIssue)

		g.Route("/events", func(er chi.Router) {
			er.Get("/", h.Events.List)
			er.Post("/", h.Events.Create)
			er.Get("/{id}", h.Events.Get)
			er.Put("/{id}", h.Events.Update)
			er.Delete("/{id}", h.Events.Delete)
			er.Post("/{id}/toggle-archive", h.Events.ToggleArchive)
		})

		g.Route("/reservations", func(rr chi.Router) {
			rr.Get("/", h.Reservations.List)
			rr.Post("/", h.Reservations.Create)
			rr.Get("/{id}", h.Reservations.Get)
			rr.Put("/{id}", h.Reservations.Update)
			rr.Delete("/{id}", h.Reservations.Delete)
			rr.Post("/{id}/status", h.Reservations.SetStatus)
		})
	})

	return r
}
